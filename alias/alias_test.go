// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alias

import (
	"strings"
	"testing"
)

const ouiSample = `OUI/MA-L                                                    Organization
company_id                                                  Organization
                                                            Address

AC-DE-48   (hex)		Apple, Inc.
ACDE48     (base 16)		Apple, Inc.
				1 Infinite Loop
				Cupertino  CA  95014
				US

00-1B-63   (hex)		Tp-Link Technologies Co.,Ltd.
001B63     (base 16)		Tp-Link Technologies Co.,Ltd.
`

func testOUI(t *testing.T) *OUI {
	t.Helper()
	oui, err := ParseOUI(strings.NewReader(ouiSample))
	if err != nil {
		t.Fatal(err)
	}
	return oui
}

func TestParseOUI(t *testing.T) {
	oui := testOUI(t)
	if oui.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", oui.Len())
	}
	if v, ok := oui.Vendor("AC:DE:48:00:11:22"); !ok || v != "Apple, Inc." {
		t.Errorf("Vendor = %q, %v", v, ok)
	}
	if _, ok := oui.Vendor("00:00:00:00:00:00"); ok {
		t.Error("unknown prefix resolved")
	}
}

func TestInvent(t *testing.T) {
	oui := testOUI(t)
	cases := []struct {
		mac, want string
	}{
		{"ac:de:48:00:11:22", "Apple-1122"},
		{"00:1b:63:ab:cd:ef", "TpLink-cdef"},
		{"02:00:00:00:be:ef", "rand-beef"},
		{"00:00:00:00:12:34", "mac-1234"},
	}
	for _, c := range cases {
		tab := NewTable(nil, oui)
		if got := tab.Invent(c.mac); got != c.want {
			t.Errorf("Invent(%s) = %q, want %q", c.mac, got, c.want)
		}
		if got := NewTable(nil, oui).Invent(c.mac); got != c.want {
			t.Errorf("Invent(%s) not deterministic: %q", c.mac, got)
		}
		if got, ok := tab.Get(c.mac); !ok || got != c.want {
			t.Errorf("Get(%s) after Invent = %q, %v", c.mac, got, ok)
		}
	}
}

func TestShortVendor(t *testing.T) {
	cases := map[string]string{
		"Apple, Inc.":                   "Apple",
		"Tp-Link Technologies Co.,Ltd.": "TpLink",
		"Hewlett Packard":               "Hewlett",
		"":                              "",
	}
	for in, want := range cases {
		if got := shortVendor(in); got != want {
			t.Errorf("shortVendor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBetterGuessNeverDowngrades(t *testing.T) {
	const mac = "aa:bb:cc:dd:ee:ff"
	tab := NewTable(nil, nil)

	tab.Invent(mac)
	tab.BetterGuess(mac, "HomeNet")
	if got, _ := tab.Get(mac); got != "HomeNet" {
		t.Fatalf("guess did not replace invented name: %q", got)
	}

	tab.BetterGuess(mac, "OtherNet")
	if got, _ := tab.Get(mac); got != "HomeNet" {
		t.Errorf("guess replaced guess: %q", got)
	}

	tab.Set(mac, "router")
	tab.BetterGuess(mac, "HomeNet")
	if got, _ := tab.Get(mac); got != "router" {
		t.Errorf("guess replaced user name: %q", got)
	}
	if got := tab.Invent(mac); got != "router" {
		t.Errorf("Invent replaced user name: %q", got)
	}
}

func TestBetterGuessIgnoresEmpty(t *testing.T) {
	tab := NewTable(nil, nil)
	tab.BetterGuess("aa:bb:cc:dd:ee:ff", "")
	if _, ok := tab.Get("aa:bb:cc:dd:ee:ff"); ok {
		t.Error("empty guess recorded")
	}
}

type memStore struct {
	entries []Entry
	changed bool
	saves   int
}

func (m *memStore) Load() ([]Entry, bool, error) {
	if !m.changed {
		return nil, false, nil
	}
	m.changed = false
	return m.entries, true, nil
}

func (m *memStore) Save(entries []Entry) error {
	m.entries = entries
	m.saves++
	return nil
}

func TestTableLoadSave(t *testing.T) {
	store := &memStore{changed: true, entries: []Entry{
		{MAC: "AA:BB:CC:DD:EE:FF", Name: "router", Source: User},
		{MAC: "11:22:33:44:55:66", Name: "Guest", Source: Guessed},
	}}
	tab := NewTable(store, nil)
	tab.Set("11:22:33:44:55:66", "laptop")

	if err := tab.Load(); err != nil {
		t.Fatal(err)
	}
	if got, _ := tab.Get("aa:bb:cc:dd:ee:ff"); got != "router" {
		t.Errorf("loaded name = %q", got)
	}
	if got, _ := tab.Get("11:22:33:44:55:66"); got != "laptop" {
		t.Errorf("stored guess replaced user name: %q", got)
	}

	tab.Invent("00:00:00:00:12:34")
	if err := tab.Save(); err != nil {
		t.Fatal(err)
	}
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1", store.saves)
	}
	if len(store.entries) != 2 {
		t.Errorf("saved %d entries, want 2 without invented names", len(store.entries))
	}

	if err := tab.Save(); err != nil {
		t.Fatal(err)
	}
	if store.saves != 1 {
		t.Errorf("clean table saved again")
	}
}
