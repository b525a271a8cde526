// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexdwagner/wifitop"
	"github.com/alexdwagner/wifitop/sniffer"
)

const usage = "usage: wifisniff [-tcpdump cmd] <interface> | wifisniff -r <file.pcap|->"

func exit(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func exitUsage() {
	fmt.Fprintln(os.Stderr, usage)
	os.Exit(2)
}

func main() {
	fs := flag.NewFlagSet("wifisniff", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	readFile := fs.String("r", "", "read a pcap file instead of capturing, - for stdin")
	tcpdump := fs.String("tcpdump", sniffer.DefaultCommand, "tcpdump command to use")
	if err := fs.Parse(os.Args[1:]); err != nil {
		exitUsage()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var input io.Reader
	switch {
	case *readFile == "-" && fs.NArg() == 0:
		input = os.Stdin
	case *readFile != "" && fs.NArg() == 0:
		f, err := os.Open(*readFile)
		if err != nil {
			exit(err)
		}
		defer f.Close()
		input = f
	case *readFile == "" && fs.NArg() == 1:
		capture, err := sniffer.StartCapture(ctx, *tcpdump, fs.Arg(0))
		if err != nil {
			exit(err)
		}
		defer capture.Stop()
		go io.Copy(os.Stderr, capture.Stderr)
		input = capture.Stdout
	default:
		exitUsage()
	}

	if err := printFrames(os.Stdout, sniffer.Decode(ctx, input)); err != nil {
		exit(err)
	}
}

func printFrames(w io.Writer, frames <-chan wifitop.Frame) error {
	out := bufio.NewWriter(w)
	for f := range frames {
		frameJSON, err := json.Marshal(f)
		if err != nil {
			// ignore marshalling errors
			continue
		}
		out.Write(frameJSON)
		out.WriteByte('\n')
	}
	return out.Flush()
}
