// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alias

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const aliasSchema = `
    CREATE TABLE IF NOT EXISTS aliases (
        mac TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        source INTEGER NOT NULL
    );
    `

// An SQLiteStore keeps aliases in an SQLite database.
type SQLiteStore struct {
	db      *sql.DB
	version int64
}

// OpenSQLite opens or creates the alias database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite open")
	}
	// data_version is per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(aliasSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "sqlite schema")
	}
	return &SQLiteStore{db: db, version: -1}, nil
}

// Load implements Store. The database's data_version tells whether another
// connection changed it since the last Load.
func (s *SQLiteStore) Load() ([]Entry, bool, error) {
	var version int64
	if err := s.db.QueryRow(`PRAGMA data_version`).Scan(&version); err != nil {
		return nil, false, errors.Wrap(err, "sqlite data_version")
	}
	if version == s.version {
		return nil, false, nil
	}

	rows, err := s.db.Query(`SELECT mac, name, source FROM aliases ORDER BY mac`)
	if err != nil {
		return nil, false, errors.Wrap(err, "sqlite query aliases")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.MAC, &e.Name, &e.Source); err != nil {
			return nil, false, errors.Wrap(err, "sqlite scan alias")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, false, errors.Wrap(err, "sqlite read aliases")
	}
	s.version = version
	return entries, true, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(entries []Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "sqlite begin")
	}

	stmt, err := tx.Prepare(`
        INSERT INTO aliases (mac, name, source) VALUES (?, ?, ?)
        ON CONFLICT(mac) DO UPDATE SET name = excluded.name, source = excluded.source
    `)
	if err != nil {
		_ = tx.Rollback()
		return errors.Wrap(err, "sqlite prepare")
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.MAC, e.Name, int(e.Source)); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "sqlite insert %s", e.MAC)
		}
	}
	return errors.Wrap(tx.Commit(), "sqlite commit")
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
