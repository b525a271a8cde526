// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"strings"

	"github.com/alexdwagner/wifitop/tracker"
)

// DefaultRateCap is the first MCS bin folded into the last column.
const DefaultRateCap = 7

// RateArt returns a string of maxBin+1 glyphs showing the relative weight of each bin.
//
// Bins from maxBin up are summed into the last column, but when that column
// holds the maximum it still names the dominant bin. The biggest column shows
// its bin digit, columns above a twentieth of it show '*', smaller ones '.',
// and empty ones a space.
func RateArt(bins tracker.Bins, maxBin int) string {
	if maxBin < 0 {
		maxBin = 0
	}
	if maxBin > tracker.RateBinMax {
		maxBin = tracker.RateBinMax
	}
	fixbins := make([]uint64, maxBin+1)
	copy(fixbins, bins[:maxBin])
	for _, v := range bins[maxBin:] {
		fixbins[maxBin] += v
	}

	mosti, most := 0, uint64(1)
	for i, v := range fixbins {
		if v >= most {
			mosti, most = i, v
		}
	}

	var out strings.Builder
	for i, v := range fixbins {
		switch {
		case v == 0:
			out.WriteByte(' ')
		case v >= most:
			if i == maxBin {
				out.WriteByte(byte('0' + mosti))
			} else {
				out.WriteByte(byte('0' + i))
			}
		case v > most/20:
			out.WriteByte('*')
		default:
			out.WriteByte('.')
		}
	}
	return out.String()
}
