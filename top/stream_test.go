// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package top

import (
	"bytes"
	"testing"
	"testing/iotest"

	"github.com/alexdwagner/wifitop"
)

func TestStreamsKeepOrder(t *testing.T) {
	frames := make(chan wifitop.Frame, 3)
	for i := 0; i < 3; i++ {
		frames <- wifitop.Frame{DSMode: i}
	}
	close(frames)
	// one byte per read makes the reader reuse its buffer
	text := iotest.OneByteReader(bytes.NewReader([]byte("abc")))

	out := make(chan activity)
	done := make(chan struct{})
	defer close(done)
	if n := start([]Source{{Frames: frames, Log: text}}, out, done); n != 2 {
		t.Fatalf("start = %d streams, want 2", n)
	}

	var modes []int
	var log []byte
	for ended := 0; ended < 2; {
		act := <-out
		switch {
		case act.eof:
			ended++
		case act.frame != nil:
			if act.stream != 0 {
				t.Errorf("frame on stream %d", act.stream)
			}
			modes = append(modes, act.frame.DSMode)
		default:
			log = append(log, act.text...)
		}
	}
	if len(modes) != 3 || modes[0] != 0 || modes[1] != 1 || modes[2] != 2 {
		t.Errorf("frames arrived as %v", modes)
	}
	if string(log) != "abc" {
		t.Errorf("log = %q", log)
	}
}

func TestStreamsStopWhenDone(t *testing.T) {
	frames := make(chan wifitop.Frame, 1)
	frames <- wifitop.Frame{}
	out := make(chan activity)
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		forwardFrames(0, frames, out, done)
		close(stopped)
	}()
	close(done)
	<-stopped
}
