// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command wifitop shows current wifi activity, like top.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/alexdwagner/wifitop/alias"
	"github.com/alexdwagner/wifitop/config"
	"github.com/alexdwagner/wifitop/sniffer"
	"github.com/alexdwagner/wifitop/top"
	"github.com/alexdwagner/wifitop/tracker"
)

func exit(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func exitUsage(err error) {
	fmt.Fprintln(os.Stderr, "wifitop:", err)
	os.Exit(2)
}

func setupLog(path string) (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log")
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	cfg, err := config.Load("wifitop", os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Cause(err) == config.ErrUsage {
			exitUsage(err)
		}
		exit(err)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		exit(errors.New("wifitop: stdin is not a terminal"))
	}

	if err := run(cfg); err != nil {
		exit(err)
	}
}

// run owns every resource of a session, so deferred cleanup happens before
// main exits.
func run(cfg config.Config) error {
	logFile, err := setupLog(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	oui, err := alias.LoadOUI(cfg.OUI)
	if err != nil {
		log.Printf("wifitop: %v", err)
	}
	store, err := alias.OpenStore(cfg.Aliases)
	if err != nil {
		return err
	}
	if c, ok := store.(io.Closer); ok {
		defer c.Close()
	}
	names := alias.NewTable(store, oui)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	capture, err := sniffer.StartCapture(ctx, cfg.Tcpdump, cfg.Ifc)
	if err != nil {
		return err
	}
	defer capture.Stop()
	log.Printf("wifitop: capturing on %s, pid %d", cfg.Ifc, capture.Pid())

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		return errors.Wrap(err, "terminal")
	}

	decodeCtx, stopDecode := context.WithCancel(ctx)
	defer stopDecode()
	app := top.New(screen, tracker.NewSession(names), names, top.Source{
		Frames: sniffer.Decode(decodeCtx, capture.Stdout),
		Log:    capture.Stderr,
	})
	app.SetRefresh(cfg.Refresh)
	stderrLog := app.Run(ctx)

	screen.Fini()
	stopDecode()
	log.Printf("wifitop: shutting down")
	os.Stderr.Write(stderrLog)

	if err := names.Save(); err != nil {
		log.Printf("wifitop: %v", err)
		return errors.Wrap(err, "save aliases")
	}
	return nil
}
