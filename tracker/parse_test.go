// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracker

import (
	"strings"
	"testing"
)

func TestParseFramesKeepsOrder(t *testing.T) {
	input := strings.Join([]string{
		`{"type_code":8,"type":"08 Beacon","ds_mode":0,"ta":"aa:bb:cc:dd:ee:ff","ra":"ff:ff:ff:ff:ff:ff","ssid":"lab"}`,
		`not json`,
		`{"type_code":40,"type":"28 QosData","ds_mode":2,"ta":"aa:bb:cc:dd:ee:ff","ra":"11:22:33:44:55:66","mcs":7,"dbm_antsignal":-52}`,
		`{"type_code":40,"type":"28 QosData","ds_mode":1,"ta":"11:22:33:44:55:66","ra":"aa:bb:cc:dd:ee:ff","bad":true}`,
	}, "\n")

	var types []string
	s := NewSession(nil)
	frames := ParseFrames(strings.NewReader(input))
	for f := range frames {
		types = append(types, f.Type)
		s.Handle(f)
	}

	want := []string{"08 Beacon", "28 QosData", "28 QosData"}
	if strings.Join(types, ",") != strings.Join(want, ",") {
		t.Fatalf("types = %v, want %v", types, want)
	}
	if s.Frames != 3 || s.Malformed != 1 || s.Unknown != 0 {
		t.Errorf("counters = %+v", s.Counters)
	}
	sta := s.Store.Station("aa:bb:cc:dd:ee:ff", "11:22:33:44:55:66")
	if sta.Rx[7] != 1 || sta.Tx[0] != 1 {
		t.Errorf("sta tx=%v rx=%v", sta.Tx, sta.Rx)
	}
	if s.Store.AP("aa:bb:cc:dd:ee:ff").RSSI[-52] != 1 {
		t.Error("downlink signal not recorded on the AP")
	}
}
