// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sniffer

import (
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// DefaultCommand captures raw 802.11 frames in monitor mode and writes them
// to stdout as a pcap stream.
const DefaultCommand = "tcpdump -w - -Ilni {ifc}"

// A Capture is a running capture subprocess.
type Capture struct {
	cmd    *exec.Cmd
	Stdout io.ReadCloser
	Stderr io.ReadCloser
}

// Argv splits cmdline on white space and substitutes ifc for every "{ifc}".
func Argv(cmdline, ifc string) []string {
	argv := strings.Fields(cmdline)
	for i, arg := range argv {
		argv[i] = strings.ReplaceAll(arg, "{ifc}", ifc)
	}
	return argv
}

// StartCapture starts cmdline for the interface ifc. The process is killed
// when ctx is done.
func StartCapture(ctx context.Context, cmdline, ifc string) (*Capture, error) {
	argv := Argv(cmdline, ifc)
	if len(argv) == 0 {
		return nil, errors.New("empty capture command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "capture stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, errors.Wrap(err, "capture stderr")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "start %s", argv[0])
	}
	return &Capture{cmd: cmd, Stdout: stdout, Stderr: stderr}, nil
}

// Pid returns the process id of the capture.
func (c *Capture) Pid() int {
	return c.cmd.Process.Pid
}

// Wait waits for the capture to exit. It closes the pipes, so it must not
// be called before they are drained.
func (c *Capture) Wait() error {
	return errors.Wrap(c.cmd.Wait(), c.cmd.Path)
}

// Stop kills the capture and reaps it.
func (c *Capture) Stop() {
	_ = c.cmd.Process.Kill()
	_ = c.cmd.Wait()
}
