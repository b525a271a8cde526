// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/alexdwagner/wifitop"
	"github.com/alexdwagner/wifitop/alias"
	"github.com/alexdwagner/wifitop/display"
	"github.com/alexdwagner/wifitop/sniffer"
	"github.com/alexdwagner/wifitop/tracker"
)

const usage = "usage: wifianalyze [-pcap] [-networks] [-expand] [-mcast] [-aliases file] [-oui file] [input]"

func exit(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func exitUsage() {
	fmt.Fprintln(os.Stderr, usage)
	os.Exit(2)
}

func main() {
	fs := flag.NewFlagSet("wifianalyze", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pcap := fs.Bool("pcap", false, "input is a pcap stream instead of json frame lines")
	listNetworks := fs.Bool("networks", false, "print the SSIDs seen in beacons as json instead of the table")
	expand := fs.Bool("expand", false, "list the stations of every AP")
	mcast := fs.Bool("mcast", false, "show multicast addresses")
	aliasPath := fs.String("aliases", "", "file or sqlite database with address aliases")
	ouiPath := fs.String("oui", "", "IEEE oui.txt vendor table")
	if err := fs.Parse(os.Args[1:]); err != nil || fs.NArg() > 1 {
		exitUsage()
	}

	input := bufio.NewReader(os.Stdin)
	if fs.NArg() == 1 && fs.Arg(0) != "-" {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			exit(err)
		}
		defer f.Close()
		input = bufio.NewReader(f)
	}

	names, err := openNames(*aliasPath, *ouiPath)
	if err != nil {
		exit(err)
	}

	var frames <-chan wifitop.Frame
	if *pcap {
		frames = sniffer.Decode(context.Background(), input)
	} else {
		frames = tracker.ParseFrames(input)
	}

	var last time.Time
	session := tracker.NewSession(names)
	session.SetClock(func() time.Time { return last })
	networks := tracker.Networks{}
	for f := range frames {
		last = f.CaptureDts
		session.Handle(f)
		networks.Add(f)
	}

	if *listNetworks {
		printNetworks(networks)
		return
	}

	if *expand {
		for _, ap := range session.Store.Rank() {
			ap.Self.Expanded = true
		}
	}
	table := display.Compose(session, names, display.Options{
		ShowMcast:  *mcast,
		UseAliases: *aliasPath != "" || *ouiPath != "",
		Now:        last,
	})
	if err := display.Print(os.Stdout, table); err != nil {
		exit(err)
	}
	if err := names.Save(); err != nil {
		exit(err)
	}
}

func printNetworks(networks tracker.Networks) {
	for _, network := range networks.Sorted() {
		networkJSON, err := json.MarshalIndent(network, "", "  ")
		if err != nil {
			panic(err)
		}
		fmt.Println(string(networkJSON))
	}
}

// openNames loads the optional alias store and OUI table.
func openNames(aliasPath, ouiPath string) (*alias.Table, error) {
	var oui *alias.OUI
	if ouiPath != "" {
		var err error
		if oui, err = alias.LoadOUI(ouiPath); err != nil {
			log.Printf("wifianalyze: %v", err)
		}
	}
	var store alias.Store
	if aliasPath != "" {
		var err error
		if store, err = alias.OpenStore(aliasPath); err != nil {
			return nil, err
		}
	}
	names := alias.NewTable(store, oui)
	return names, names.Load()
}
