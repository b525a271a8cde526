// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracker

import "time"

// RateBinMax is the highest MCS histogram bin; it also counts every MCS above it.
const RateBinMax = 9

// Self is the station key of an AP's own record inside its bucket.
const Self = ""

// Bins counts packets per MCS bin.
type Bins [RateBinMax + 1]uint64

// Total returns the sum of all bins.
func (b *Bins) Total() uint64 {
	var n uint64
	for _, v := range b {
		n += v
	}
	return n
}

// A Station struct tracks the statistics of one AP or one station as seen from an AP.
type Station struct {
	Tx          Bins
	Rx          Bins
	RSSI        map[int]uint64
	LastType    string
	LastUpdated time.Time
	IsAP        bool
	Expanded    bool
}

func newStation() *Station {
	return &Station{RSSI: make(map[int]uint64)}
}

// Zero clears the packet counters, the signal histogram and the liveness timestamp.
func (s *Station) Zero() {
	s.Tx = Bins{}
	s.Rx = Bins{}
	s.LastUpdated = time.Time{}
	for k := range s.RSSI {
		delete(s.RSSI, k)
	}
}

// Traffic returns the number of data packets sent and received.
func (s *Station) Traffic() uint64 {
	return s.Tx.Total() + s.Rx.Total()
}

// AvgRSSI returns the signal average biased toward zero by one phantom sample,
// rounded toward negative infinity.
func (s *Station) AvgRSSI() int {
	sum, count := 0, 1
	for dbm, n := range s.RSSI {
		sum += dbm * int(n)
		count += int(n)
	}
	q := sum / count
	if sum%count != 0 && sum < 0 {
		q--
	}
	return q
}
