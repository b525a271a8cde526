// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wifitop

import (
	"encoding/json"
	"time"
)

// 802.11 main frame types, as found in the high nibble of Frame.TypeCode.
const (
	MainTypeMgmt = 0
	MainTypeCtrl = 1
	MainTypeData = 2
)

// Frame type codes the aggregator treats specially.
const (
	TypeBeacon   uint8 = 0x08
	TypeDataNull uint8 = 0x24
)

// Data service modes, taken from the ToDS/FromDS bits of the frame control field.
const (
	DSModeNone   = 0
	DSModeToAP   = 1
	DSModeFromAP = 2
	DSModeWDS    = 3
)

// A Frame struct represents one decoded IEEE 802.11 frame.
// Optional radio fields are nil when the capture did not carry them.
type Frame struct {
	CaptureDts time.Time `json:"capture_dts"`
	TypeCode   uint8     `json:"type_code"`
	Type       string    `json:"type"`
	DSMode     int       `json:"ds_mode"`
	TA         string    `json:"ta,omitempty"`
	RA         string    `json:"ra,omitempty"`
	MCS        *int      `json:"mcs,omitempty"`
	Signal     *int      `json:"dbm_antsignal,omitempty"`
	SSID       string    `json:"ssid,omitempty"`
	Bad        bool      `json:"bad,omitempty"`
}

// MainType returns the 802.11 main type of the frame.
func (f *Frame) MainType() int {
	return int(f.TypeCode >> 4)
}

func (f *Frame) IsControl() bool { return f.MainType() == MainTypeCtrl }
func (f *Frame) IsData() bool    { return f.MainType() == MainTypeData }
func (f *Frame) IsBeacon() bool  { return f.TypeCode == TypeBeacon }
func (f *Frame) IsNull() bool    { return f.TypeCode == TypeDataNull }

// ParseFrame parses a frame in json format.
func ParseFrame(frameJSON []byte) (Frame, error) {
	var frame Frame
	err := json.Unmarshal(frameJSON, &frame)
	return frame, err
}

// IntPtr is a helper for filling the optional numeric fields of a Frame.
func IntPtr(v int) *int {
	return &v
}
