// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexdwagner/wifitop/tracker"
)

// ActiveWindow is how long a row stays highlighted after its last frame.
const ActiveWindow = 2 * time.Second

// A Namer resolves hardware addresses to display names.
type Namer interface {
	Get(mac string) (string, bool)
	Invent(mac string) string
}

// Options control what Compose shows.
type Options struct {
	ShowMcast  bool
	UseAliases bool
	Rows       int // screen height including the header; 0 means no limit
	Now        time.Time
}

// A Row is one visible line of the table.
type Row struct {
	Line      int
	Text      string
	Highlight bool
	AP        string // bucket the row belongs to
	MAC       string // tracker.Self on AP rows
}

// A Table is a composed screen: the header line followed by the rows.
type Table struct {
	Header string
	Rows   []Row
	MaxRow int // last screen line holding a row
}

// Header formats the counter line and the column titles.
func Header(c tracker.Counters) string {
	counts := fmt.Sprintf("%dkp %dkb %dku %dkc",
		c.Frames/1000, c.Malformed/1000, c.Unknown/1000, c.Control/1000)
	return fmt.Sprintf("%-21.21s %4s %6s %8s %6s %8s %s",
		counts, "RSSI", "Up", "-----MCS", "Down", "-----MCS", "Type")
}

// IsMulticast reports whether mac has the group bit set.
func IsMulticast(mac string) bool {
	if len(mac) < 2 {
		return false
	}
	b, err := strconv.ParseUint(mac[0:2], 16, 8)
	return err == nil && b&1 == 1
}

// Compose builds the table for the current state of a session.
// It only reads the session; names may be nil.
func Compose(s *tracker.Session, names Namer, opts Options) Table {
	t := Table{Header: Header(s.Counters)}
	limit := opts.Rows - 1
	for _, ap := range s.Store.Rank() {
		for _, r := range ap.Stations {
			if opts.Rows > 0 && len(t.Rows) >= limit {
				t.MaxRow = len(t.Rows)
				return t
			}
			isAP := r.MAC == tracker.Self
			if !isAP && !ap.Self.Expanded {
				continue
			}
			mcast := IsMulticast(r.MAC)
			if mcast && !opts.ShowMcast {
				continue
			}
			t.Rows = append(t.Rows, Row{
				Line:      len(t.Rows) + 1,
				Text:      formatRow(ap.MAC, r, isAP, mcast, names, opts),
				Highlight: opts.Now.Sub(r.Station.LastUpdated) < ActiveWindow,
				AP:        ap.MAC,
				MAC:       r.MAC,
			})
		}
	}
	t.MaxRow = len(t.Rows)
	return t
}

func formatRow(apMAC string, r tracker.Ranked, isAP, mcast bool, names Namer, opts Options) string {
	st := r.Station
	down, up := &st.Rx, &st.Tx
	if isAP {
		down, up = &st.Tx, &st.Rx
	}

	typ := "   "
	switch {
	case mcast:
		typ = "   *"
	case isAP && st.Expanded:
		typ = " AP "
	case isAP:
		typ = "+AP "
	}

	mac := r.MAC
	if isAP {
		mac = apMAC
	}
	name := mac
	if opts.UseAliases && names != nil {
		if alias, ok := names.Get(mac); ok {
			name = alias
		} else {
			name = names.Invent(mac)
		}
	}

	return fmt.Sprintf("%-4s%-17.17s %4s %6s %-8s %6s %-8s %s",
		typ, name,
		blankZero(int64(st.AvgRSSI())),
		blankZero(int64(up.Total())), RateArt(*up, DefaultRateCap),
		blankZero(int64(down.Total())), RateArt(*down, DefaultRateCap),
		st.LastType)
}

func blankZero(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}
