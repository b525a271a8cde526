// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexdwagner/wifitop/config"
)

func TestRunReturnsSetupErrors(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	cfg := config.Config{
		Log:     filepath.Join(dir, "wifitop.log"),
		Aliases: filepath.Join(dir, "missing", "aliases.db"),
		OUI:     filepath.Join(dir, "oui.txt"),
		Ifc:     "wlan0",
		Tcpdump: "tcpdump -w - -Ilni {ifc}",
	}
	if err := run(cfg); err == nil {
		t.Fatal("run succeeded with an unusable alias database")
	}

	// the log was opened and written before the failure
	b, err := os.ReadFile(cfg.Log)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) == 0 {
		t.Error("log is empty, want the missing oui table reported")
	}
}
