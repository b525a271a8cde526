// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alias

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// An OUI table maps the first three octets of a hardware address to a vendor.
type OUI struct {
	vendors map[string]string
}

var ouiLine = regexp.MustCompile(`^\s*([0-9A-Fa-f]{2})-([0-9A-Fa-f]{2})-([0-9A-Fa-f]{2})\s+\(hex\)\s+(.+?)\s*$`)

// ParseOUI reads the IEEE oui.txt format. Lines other than the "(hex)" lines are ignored.
func ParseOUI(r io.Reader) (*OUI, error) {
	t := &OUI{vendors: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := ouiLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		prefix := strings.ToLower(m[1] + ":" + m[2] + ":" + m[3])
		t.vendors[prefix] = m[4]
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read oui table")
	}
	return t, nil
}

// LoadOUI parses the oui.txt file at path.
func LoadOUI(path string) (*OUI, error) {
	f, err := os.Open(path)
	if err != nil {
		return &OUI{vendors: make(map[string]string)}, errors.Wrap(err, "open oui table")
	}
	defer f.Close()
	return ParseOUI(f)
}

// Vendor returns the vendor registered for the prefix of mac.
func (t *OUI) Vendor(mac string) (string, bool) {
	if t == nil || len(mac) < 8 {
		return "", false
	}
	v, ok := t.vendors[strings.ToLower(mac[:8])]
	return v, ok
}

// Len returns the number of known prefixes.
func (t *OUI) Len() int {
	if t == nil {
		return 0
	}
	return len(t.vendors)
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// shortVendor turns "Apple, Inc." into "Apple".
func shortVendor(v string) string {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return ""
	}
	s := nonAlnum.ReplaceAllString(fields[0], "")
	if len(s) > 8 {
		s = s[:8]
	}
	return s
}
