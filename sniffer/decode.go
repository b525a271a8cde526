// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sniffer turns a pcap stream of radiotap-framed 802.11 packets
// into wifitop frames.
package sniffer

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/alexdwagner/wifitop"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// TypeCode converts a gopacket frame type to the "main type << 4 | subtype" form.
func TypeCode(t layers.Dot11Type) uint8 {
	return uint8(t&0x3)<<4 | uint8(t>>2)
}

// TypeLabel returns the display label of a frame type, such as "08 Beacon".
func TypeLabel(t layers.Dot11Type) string {
	name := t.String()
	for _, prefix := range []string{"Mgmt", "Ctrl", "Data"} {
		if trimmed := strings.TrimPrefix(name, prefix); trimmed != name && trimmed != "" {
			name = trimmed
			break
		}
	}
	return fmt.Sprintf("%02X %s", TypeCode(t), name)
}

// FrameFromLayers builds a frame from decoded layers. rt may be nil when
// the capture has no radiotap header; d may be nil when the 802.11 header
// could not be decoded, in which case only Bad is meaningful.
func FrameFromLayers(rt *layers.RadioTap, d *layers.Dot11, ies []*layers.Dot11InformationElement, bad bool) wifitop.Frame {
	f := wifitop.Frame{Bad: bad}
	if rt != nil {
		if rt.Present.DBMAntennaSignal() {
			f.Signal = wifitop.IntPtr(int(rt.DBMAntennaSignal))
		}
		if rt.Present.MCS() && rt.MCS.Known.MCSIndex() {
			f.MCS = wifitop.IntPtr(int(rt.MCS.MCS))
		}
		if rt.Present.Flags() && rt.Flags.BadFCS() {
			f.Bad = true
		}
	}
	if d == nil {
		return f
	}
	// some drivers keep the FCS without flagging corrupt frames
	if rt != nil && rt.Present.Flags() && rt.Flags.FCS() && !d.ChecksumValid() {
		f.Bad = true
	}
	f.TypeCode = TypeCode(d.Type)
	f.Type = TypeLabel(d.Type)
	f.DSMode = int(d.Flags & 0x3)
	f.TA = d.Address2.String()
	f.RA = d.Address1.String()
	for _, ie := range ies {
		if ie.ID == layers.Dot11InformationElementIDSSID {
			f.SSID = string(ie.Info)
			break
		}
	}
	return f
}

func frameFromPacket(packet gopacket.Packet) wifitop.Frame {
	var (
		rt  *layers.RadioTap
		d   *layers.Dot11
		ies []*layers.Dot11InformationElement
	)
	for _, l := range packet.Layers() {
		switch l := l.(type) {
		case *layers.RadioTap:
			rt = l
		case *layers.Dot11:
			d = l
		case *layers.Dot11InformationElement:
			ies = append(ies, l)
		}
	}
	f := FrameFromLayers(rt, d, ies, packet.ErrorLayer() != nil)
	f.CaptureDts = packet.Metadata().Timestamp
	return f
}

// Decode reads a pcap stream and emits one frame per packet.
// The channel is closed at the end of the stream or once ctx is done.
func Decode(ctx context.Context, r io.Reader) <-chan wifitop.Frame {
	out := make(chan wifitop.Frame, 256)

	go func() {
		defer close(out)
		reader, err := pcapgo.NewReader(r)
		if err != nil {
			if err != io.EOF {
				log.Printf("sniffer: %v", err)
			}
			return
		}
		packetSource := gopacket.NewPacketSource(reader, reader.LinkType())
		for packet := range packetSource.Packets() {
			select {
			case out <- frameFromPacket(packet):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
