// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package top

import (
	"io"

	"github.com/alexdwagner/wifitop"
)

// readSize is the most diagnostic output read from a stream at once.
const readSize = 65536

// A Source is one capture: its decoded frames and its diagnostic output.
// Log may be nil.
type Source struct {
	Frames <-chan wifitop.Frame
	Log    io.Reader
}

// activity is something that happened on one stream.
type activity struct {
	stream int
	frame  *wifitop.Frame
	text   []byte
	eof    bool
}

// start launches one reader per stream and returns the number of streams.
// The readers only move data; they stop early once done is closed.
func start(sources []Source, out chan<- activity, done <-chan struct{}) int {
	n := 0
	for _, src := range sources {
		if src.Frames != nil {
			go forwardFrames(n, src.Frames, out, done)
			n++
		}
		if src.Log != nil {
			go forwardText(n, src.Log, out, done)
			n++
		}
	}
	return n
}

func send(out chan<- activity, a activity, done <-chan struct{}) bool {
	select {
	case out <- a:
		return true
	case <-done:
		return false
	}
}

func forwardFrames(id int, in <-chan wifitop.Frame, out chan<- activity, done <-chan struct{}) {
	for f := range in {
		if !send(out, activity{stream: id, frame: &f}, done) {
			return
		}
	}
	send(out, activity{stream: id, eof: true}, done)
}

func forwardText(id int, r io.Reader, out chan<- activity, done <-chan struct{}) {
	buf := make([]byte, readSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			// buf is reused by the next read
			text := append([]byte(nil), buf[:n]...)
			if !send(out, activity{stream: id, text: text}, done) {
				return
			}
		}
		if err != nil {
			send(out, activity{stream: id, eof: true}, done)
			return
		}
	}
}
