// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracker

import (
	"regexp"
	"time"

	"github.com/alexdwagner/wifitop"
)

// A Suggester receives SSID-derived names for access points.
// It decides on its own whether a suggestion beats the name it already has.
type Suggester interface {
	BetterGuess(mac, name string)
}

// Counters are the session-wide frame counters shown in the table header.
type Counters struct {
	Frames    uint64 // every frame handed to the session
	Malformed uint64 // frames the decoder flagged as bad
	Unknown   uint64 // bad frames naming an AP or station never seen intact
	Control   uint64 // control frames, which carry no AP/station relation
}

// A Session aggregates decoded frames into a Store.
type Session struct {
	Counters
	Store *Store

	names Suggester
	now   func() time.Time
}

// NewSession creates a session with an empty store.
// names may be nil when no alias table is in use.
func NewSession(names Suggester) *Session {
	return &Session{
		Store: NewStore(),
		names: names,
		now:   time.Now,
	}
}

// SetClock replaces the clock used for liveness timestamps.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

var nonWord = regexp.MustCompile(`[^\w]`)

// Handle classifies one frame and updates the store.
func (s *Session) Handle(f wifitop.Frame) {
	s.Frames++
	if f.Bad {
		s.Malformed++
	}
	if f.IsControl() {
		// control traffic is uninteresting for now
		s.Control++
		return
	}

	var down bool
	var apMAC, staMAC string
	switch {
	case f.DSMode == wifitop.DSModeFromAP || (f.DSMode == wifitop.DSModeNone && f.IsBeacon()):
		down = true
		apMAC, staMAC = f.TA, f.RA
	case f.DSMode == wifitop.DSModeToAP:
		staMAC, apMAC = f.TA, f.RA
	default:
		// without DS bits we can't tell the AP from the station
		return
	}

	if f.Bad {
		if _, ok := s.Store.Lookup(apMAC); !ok {
			s.Unknown++
			return
		}
		if _, ok := s.Store.LookupStation(apMAC, staMAC); !ok {
			s.Unknown++
			return
		}
	}
	ap := s.Store.AP(apMAC)
	sta := s.Store.Station(apMAC, staMAC)

	if f.IsData() {
		bin := 0
		if f.MCS != nil {
			bin = *f.MCS
		}
		if bin > RateBinMax {
			bin = RateBinMax
		}
		if bin < 0 {
			bin = 0
		}
		if down {
			ap.Tx[bin]++
			sta.Rx[bin]++
		} else {
			ap.Rx[bin]++
			sta.Tx[bin]++
		}
	}

	if f.Signal != nil {
		if down {
			ap.RSSI[*f.Signal]++
		} else {
			sta.RSSI[*f.Signal]++
		}
	}

	if down && f.IsBeacon() {
		ap.IsAP = true
		if f.SSID != "" && s.names != nil {
			s.names.BetterGuess(apMAC, nonWord.ReplaceAllString(f.SSID, "."))
		}
	}

	if !f.IsBeacon() && !f.IsNull() {
		now := s.now()
		ap.LastUpdated, sta.LastUpdated = now, now
		ap.LastType, sta.LastType = f.Type, f.Type
	}
}

// Zero clears every record and the frame/malformed counters.
// The unknown and control counters keep running.
func (s *Session) Zero() {
	s.Store.Zero()
	s.Frames = 0
	s.Malformed = 0
}
