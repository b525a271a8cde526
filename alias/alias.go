// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alias gives hardware addresses human friendly names.
//
// Names come from three places, in increasing order of trust: names
// invented from the vendor prefix, guesses such as an AP's SSID, and names
// a user wrote into the alias store. A name is only ever replaced by a more
// trusted one.
package alias

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Source ranks where a name came from.
type Source int

const (
	Invented Source = iota
	Guessed
	User
)

// An Entry is one named address.
type Entry struct {
	MAC    string
	Name   string
	Source Source
}

// A Store persists entries between sessions.
type Store interface {
	// Load returns the stored entries. changed is false when the store has
	// not been modified since the previous Load, in which case entries is nil.
	Load() (entries []Entry, changed bool, err error)
	Save(entries []Entry) error
}

// A Table resolves addresses to names.
type Table struct {
	store   Store
	oui     *OUI
	entries map[string]Entry
	dirty   bool
}

// NewTable creates a table backed by store. Both store and oui may be nil.
func NewTable(store Store, oui *OUI) *Table {
	return &Table{
		store:   store,
		oui:     oui,
		entries: make(map[string]Entry),
	}
}

func normalize(mac string) string {
	return strings.ToLower(mac)
}

// Get returns the name of mac.
func (t *Table) Get(mac string) (string, bool) {
	e, ok := t.entries[normalize(mac)]
	return e.Name, ok
}

// Invent makes up a name for mac from its vendor prefix and its last two octets.
// The result only depends on mac and the OUI table. An existing name is kept.
func (t *Table) Invent(mac string) string {
	key := normalize(mac)
	if e, ok := t.entries[key]; ok {
		return e.Name
	}
	name := inventName(key, t.oui)
	t.entries[key] = Entry{MAC: key, Name: name, Source: Invented}
	return name
}

func inventName(mac string, oui *OUI) string {
	prefix := "mac"
	if v, ok := oui.Vendor(mac); ok && shortVendor(v) != "" {
		prefix = shortVendor(v)
	} else if isLocal(mac) {
		prefix = "rand"
	}
	tail := strings.ReplaceAll(mac, ":", "")
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return fmt.Sprintf("%s-%s", prefix, tail)
}

// isLocal reports whether mac is locally administered, as randomized addresses are.
func isLocal(mac string) bool {
	if len(mac) < 2 {
		return false
	}
	b, err := strconv.ParseUint(mac[:2], 16, 8)
	return err == nil && b&2 == 2
}

// BetterGuess records name for mac unless mac already has a guessed or user name.
func (t *Table) BetterGuess(mac, name string) {
	t.set(Entry{MAC: normalize(mac), Name: name, Source: Guessed})
}

// Set records a user name for mac.
func (t *Table) Set(mac, name string) {
	t.set(Entry{MAC: normalize(mac), Name: name, Source: User})
}

func (t *Table) set(e Entry) {
	if e.Name == "" {
		return
	}
	old, ok := t.entries[e.MAC]
	if ok && (old.Source > e.Source || (old.Source == e.Source && e.Source != User)) {
		return
	}
	if ok && old == e {
		return
	}
	t.entries[e.MAC] = e
	t.dirty = true
}

// Load merges the store's entries into the table if the store changed.
// Entries read from the store replace names of equal or lower rank.
func (t *Table) Load() error {
	if t.store == nil {
		return nil
	}
	entries, changed, err := t.store.Load()
	if err != nil || !changed {
		return err
	}
	for _, e := range entries {
		e.MAC = normalize(e.MAC)
		if old, ok := t.entries[e.MAC]; ok && old.Source > e.Source {
			continue
		}
		t.entries[e.MAC] = e
	}
	return nil
}

// Save writes every guessed and user name to the store.
func (t *Table) Save() error {
	if t.store == nil || !t.dirty {
		return nil
	}
	if err := t.store.Save(t.Entries()); err != nil {
		return err
	}
	t.dirty = false
	return nil
}

// Entries returns the persistent entries sorted by address.
func (t *Table) Entries() []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Source != Invented {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].MAC < out[j].MAC
	})
	return out
}
