// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracker

import (
	"sort"
	"time"

	"github.com/alexdwagner/wifitop"
)

// A Network struct represents an SSID and the access points announcing it.
type Network struct {
	SSID        string    `json:"ssid"`
	APs         *Set      `json:"aps"`
	LastSeenDts time.Time `json:"last_seen_dts"`
}

// Networks indexes beacons by SSID.
type Networks map[string]*Network

// Add records f if it is a beacon announcing an SSID.
func (n Networks) Add(f wifitop.Frame) {
	if !f.IsBeacon() || f.DSMode != wifitop.DSModeNone || f.Bad || f.SSID == "" || f.TA == "" {
		// unable to identify network
		return
	}
	network, exists := n[f.SSID]
	if !exists {
		network = &Network{SSID: f.SSID, APs: &Set{}}
		n[f.SSID] = network
	}
	network.APs.Add(f.TA)
	if network.LastSeenDts.Before(f.CaptureDts) {
		network.LastSeenDts = f.CaptureDts
	}
}

// Sorted returns the networks ordered by SSID.
func (n Networks) Sorted() []*Network {
	out := make([]*Network, 0, len(n))
	for _, network := range n {
		out = append(out, network)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SSID < out[j].SSID
	})
	return out
}
