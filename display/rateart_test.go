// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"testing"

	"github.com/alexdwagner/wifitop/tracker"
)

func TestRateArt(t *testing.T) {
	tests := []struct {
		name   string
		bins   tracker.Bins
		maxBin int
		want   string
	}{
		{"empty", tracker.Bins{}, 7, "        "},
		{"folded slot names the dominant bin", tracker.Bins{5, 0, 0, 0, 0, 0, 0, 2, 0, 3}, 7, "0      7"},
		{"fold wins alone", tracker.Bins{0, 1, 0, 0, 0, 0, 0, 0, 0, 40}, 7, " .     7"},
		{"star above a twentieth", tracker.Bins{100, 6, 5}, 7, "0*.     "},
		{"ties show their own digits", tracker.Bins{0, 0, 3, 3}, 7, "  23    "},
		{"single packet", tracker.Bins{0, 0, 0, 0, 1}, 7, "    4   "},
		{"no fold at the top bin", tracker.Bins{0, 0, 0, 0, 0, 0, 0, 0, 2, 9}, 9, "        *9"},
		{"narrow cap", tracker.Bins{1, 2, 3, 4}, 2, "**2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RateArt(tt.bins, tt.maxBin)
			if got != tt.want {
				t.Errorf("RateArt(%v, %d) = %q, want %q", tt.bins, tt.maxBin, got, tt.want)
			}
			if len(got) != tt.maxBin+1 {
				t.Errorf("len = %d, want %d", len(got), tt.maxBin+1)
			}
		})
	}
}
