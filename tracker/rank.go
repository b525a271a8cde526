// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracker

import "sort"

// A Ranked pairs a record with the address it is stored under.
type Ranked struct {
	MAC     string
	Station *Station
}

// A RankedAP is an AP bucket in display order.
type RankedAP struct {
	MAC      string
	Self     *Station
	Stations []Ranked // self first, then stations by traffic
}

// apLess orders APs by descending self traffic, then by address.
func apLess(a, b RankedAP) bool {
	ta, tb := a.Self.Traffic(), b.Self.Traffic()
	if ta != tb {
		return ta > tb
	}
	return a.MAC < b.MAC
}

// stationLess puts the self-record first, then orders stations by
// descending traffic, then by address.
func stationLess(a, b Ranked) bool {
	if (a.MAC == Self) != (b.MAC == Self) {
		return a.MAC == Self
	}
	ta, tb := a.Station.Traffic(), b.Station.Traffic()
	if ta != tb {
		return ta > tb
	}
	return a.MAC < b.MAC
}

// RankStations returns the records of a bucket in display order.
func RankStations(b Bucket) []Ranked {
	out := make([]Ranked, 0, len(b))
	for mac, st := range b {
		out = append(out, Ranked{MAC: mac, Station: st})
	}
	sort.Slice(out, func(i, j int) bool {
		return stationLess(out[i], out[j])
	})
	return out
}

// Rank returns every AP bucket of the store in display order.
func (s *Store) Rank() []RankedAP {
	out := make([]RankedAP, 0, len(s.aps))
	for mac, b := range s.aps {
		out = append(out, RankedAP{MAC: mac, Self: b.Self(), Stations: RankStations(b)})
	}
	sort.Slice(out, func(i, j int) bool {
		return apLess(out[i], out[j])
	})
	return out
}
