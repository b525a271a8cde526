// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexdwagner/wifitop"
)

func TestNetworks(t *testing.T) {
	n := Networks{}
	b1 := beacon("Home")
	b1.CaptureDts = time.Unix(10, 0)
	b2 := beacon("Home")
	b2.TA = "aa:bb:cc:dd:ee:00"
	b2.CaptureDts = time.Unix(20, 0)
	b3 := beacon("Cafe")

	for _, f := range []wifitop.Frame{b1, b2, b3, beacon(""), downData(1)} {
		n.Add(f)
	}

	sorted := n.Sorted()
	if len(sorted) != 2 || sorted[0].SSID != "Cafe" || sorted[1].SSID != "Home" {
		t.Fatalf("networks = %v", sorted)
	}
	home := sorted[1]
	if home.APs.Len() != 2 {
		t.Errorf("Home APs = %v", home.APs.Elements())
	}
	if !home.LastSeenDts.Equal(time.Unix(20, 0)) {
		t.Errorf("LastSeenDts = %v", home.LastSeenDts)
	}

	aps, err := json.Marshal(home.APs)
	if err != nil {
		t.Fatal(err)
	}
	if want := `["aa:bb:cc:dd:ee:00","aa:bb:cc:dd:ee:ff"]`; string(aps) != want {
		t.Errorf("APs json = %s, want %s", aps, want)
	}
}
