// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config collects wifitop options from a .env file, the
// environment and the command line, in increasing order of precedence.
package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/alexdwagner/wifitop/sniffer"
)

// Defaults.
const (
	DefaultIfc     = "en0"
	DefaultAliases = "~/.ether_aliases"
	DefaultOUI     = "oui.txt"
	DefaultRefresh = 100 * time.Millisecond
)

// Config holds the options of a wifitop run.
type Config struct {
	Ifc     string        // interface to capture on
	Tcpdump string        // capture command, "{ifc}" is replaced by Ifc
	Aliases string        // alias store path
	OUI     string        // IEEE oui.txt path
	Log     string        // log file, empty for no log
	Refresh time.Duration // redraw interval
}

// ErrUsage is returned, possibly wrapped, when the command line is invalid.
var ErrUsage = errors.New("usage")

// Load reads ./.env if present, then the environment, then args.
func Load(name string, args []string, usage io.Writer) (Config, error) {
	return load(".env", name, args, usage)
}

func load(envFile, name string, args []string, usage io.Writer) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return Config{}, errors.Wrapf(err, "load %s", envFile)
	}

	refresh, err := getEnvDuration("WIFITOP_REFRESH", DefaultRefresh)
	if err != nil {
		return Config{}, err
	}
	c := Config{
		Ifc:     getEnv("WIFITOP_IFC", DefaultIfc),
		Tcpdump: getEnv("WIFITOP_TCPDUMP", sniffer.DefaultCommand),
		Aliases: getEnv("WIFITOP_ALIASES", DefaultAliases),
		OUI:     getEnv("WIFITOP_OUI", DefaultOUI),
		Log:     os.Getenv("WIFITOP_LOG"),
		Refresh: refresh,
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&c.Ifc, "i", c.Ifc, "wifi interface to use")
	fs.StringVar(&c.Ifc, "ifc", c.Ifc, "wifi interface to use")
	fs.StringVar(&c.Tcpdump, "tcpdump", c.Tcpdump, "tcpdump command to use")
	fs.StringVar(&c.Aliases, "aliases", c.Aliases, "file or sqlite database with address aliases")
	fs.StringVar(&c.OUI, "oui", c.OUI, "IEEE oui.txt vendor table")
	fs.StringVar(&c.Log, "log", c.Log, "write a debug log to this file")
	fs.DurationVar(&c.Refresh, "refresh", c.Refresh, "screen refresh interval")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(ErrUsage, err.Error())
	}
	if fs.NArg() > 0 {
		return Config{}, errors.Wrap(ErrUsage, "no non-flag arguments expected")
	}
	if c.Refresh <= 0 {
		return Config{}, errors.Wrapf(ErrUsage, "invalid refresh interval %v", c.Refresh)
	}

	c.Aliases = expandHome(c.Aliases)
	c.OUI = expandHome(c.OUI)
	c.Log = expandHome(c.Log)
	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	return d, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
