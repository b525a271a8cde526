// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracker

// A Bucket holds every record seen under one AP, keyed by station address.
// The AP's own record is stored under Self.
type Bucket map[string]*Station

// Self returns the AP's own record.
func (b Bucket) Self() *Station {
	return b[Self]
}

// A Store maps AP addresses to their buckets.
//
// AP and Station are the only ways records come into existence; Lookup and
// LookupStation never create anything.
type Store struct {
	aps map[string]Bucket
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{aps: make(map[string]Bucket)}
}

// Lookup returns the bucket of an AP without creating it.
func (s *Store) Lookup(ap string) (Bucket, bool) {
	b, ok := s.aps[ap]
	return b, ok
}

// LookupStation returns a record of an AP bucket without creating it.
func (s *Store) LookupStation(ap, sta string) (*Station, bool) {
	b, ok := s.aps[ap]
	if !ok {
		return nil, false
	}
	st, ok := b[sta]
	return st, ok
}

// AP returns the self-record of an AP, creating the bucket if needed.
func (s *Store) AP(ap string) *Station {
	return s.bucket(ap).Self()
}

// Station returns the record of sta under ap, creating it and the bucket if needed.
func (s *Store) Station(ap, sta string) *Station {
	b := s.bucket(ap)
	st, ok := b[sta]
	if !ok {
		st = newStation()
		b[sta] = st
	}
	return st
}

func (s *Store) bucket(ap string) Bucket {
	b, ok := s.aps[ap]
	if !ok {
		b = Bucket{Self: newStation()}
		s.aps[ap] = b
	}
	return b
}

// Len returns the number of AP buckets.
func (s *Store) Len() int {
	return len(s.aps)
}

// Records returns the number of records over all buckets, self-records included.
func (s *Store) Records() int {
	n := 0
	for _, b := range s.aps {
		n += len(b)
	}
	return n
}

// Zero clears the counters of every record. Records are never removed.
func (s *Store) Zero() {
	for _, b := range s.aps {
		for _, st := range b {
			st.Zero()
		}
	}
}
