// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alias

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// guessMark flags a line whose name was guessed rather than typed in by a user.
const guessMark = "*"

// A FileStore keeps aliases in a text file, one "mac name" pair per line.
// A trailing "*" marks a guessed name; '#' starts a comment.
type FileStore struct {
	path    string
	modTime time.Time
	size    int64
}

// NewFileStore returns a store for the file at path. The file need not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements Store. It only parses the file when its size or mtime changed.
func (s *FileStore) Load() ([]Entry, bool, error) {
	fi, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "stat aliases")
	}
	if fi.ModTime().Equal(s.modTime) && fi.Size() == s.size {
		return nil, false, nil
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, false, errors.Wrap(err, "open aliases")
	}
	defer f.Close()
	entries, err := parseAliases(f)
	if err != nil {
		return nil, false, errors.Wrapf(err, "read %s", s.path)
	}
	s.modTime, s.size = fi.ModTime(), fi.Size()
	return entries, true, nil
}

func parseAliases(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		e := Entry{MAC: fields[0], Name: fields[1], Source: User}
		if len(fields) > 2 && fields[2] == guessMark {
			e.Source = Guessed
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}

// Save implements Store. The file is replaced atomically.
func (s *FileStore) Save(entries []Entry) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp*")
	if err != nil {
		return errors.Wrap(err, "create aliases")
	}
	w := bufio.NewWriter(tmp)
	for _, e := range entries {
		if e.Source == Guessed {
			fmt.Fprintf(w, "%s %s %s\n", e.MAC, e.Name, guessMark)
		} else {
			fmt.Fprintf(w, "%s %s\n", e.MAC, e.Name)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "write aliases")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "write aliases")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "replace aliases")
	}
	if fi, err := os.Stat(s.path); err == nil {
		s.modTime, s.size = fi.ModTime(), fi.Size()
	}
	return nil
}

// OpenStore picks a store for path by its extension: ".db" and ".sqlite"
// files are SQLite databases, anything else is a text file.
func OpenStore(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	}
	return NewFileStore(path), nil
}
