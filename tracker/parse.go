// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracker

import (
	"bufio"
	"io"

	"github.com/alexdwagner/wifitop"
)

const bufferFactor int = 1000

func readFrameJSONs(input io.Reader) <-chan []byte {
	out := make(chan []byte, bufferFactor)

	go func() {
		defer close(out)
		scanner := bufio.NewScanner(input)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			// copy scan result because it may get overwritten by the next scan result:
			var line []byte
			line = append(line, scanner.Bytes()...)
			out <- line
		}
	}()
	return out
}

func parseFrameJSONs(in <-chan []byte) <-chan wifitop.Frame {
	out := make(chan wifitop.Frame, bufferFactor)

	go func() {
		defer close(out)
		for frameJSON := range in {
			frame, err := wifitop.ParseFrame(frameJSON)
			if err != nil {
				// ignore erroneous lines
				continue
			}
			out <- frame
		}
	}()
	return out
}

// ParseFrames decodes json frame lines from input.
// A single parser keeps the frames in capture order.
func ParseFrames(input io.Reader) <-chan wifitop.Frame {
	return parseFrameJSONs(readFrameJSONs(input))
}

// Consume handles every frame of in until it is closed.
func (s *Session) Consume(in <-chan wifitop.Frame) {
	for frame := range in {
		s.Handle(frame)
	}
}
