// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexdwagner/wifitop"
)

func TestPrintFrames(t *testing.T) {
	frames := make(chan wifitop.Frame, 2)
	frames <- wifitop.Frame{TypeCode: wifitop.TypeBeacon, Type: "08 Beacon", TA: "aa:bb:cc:dd:ee:ff", SSID: "Home"}
	frames <- wifitop.Frame{TypeCode: 0x1d, Type: "1D Ack", Bad: true}
	close(frames)

	var buf bytes.Buffer
	if err := printFrames(&buf, frames); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	for i, line := range lines {
		f, err := wifitop.ParseFrame([]byte(line))
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if i == 0 && (f.SSID != "Home" || !f.IsBeacon()) {
			t.Errorf("line 0 = %+v", f)
		}
		if i == 1 && (!f.Bad || !f.IsControl()) {
			t.Errorf("line 1 = %+v", f)
		}
	}
}
