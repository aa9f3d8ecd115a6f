// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SchemaVersion is the only snapshot schema understood by the client.
const SchemaVersion = 1

// Entry is a single password record.
//
// ID is the record key; two entries are the same record when their IDs are
// equal after case folding. Timestamp is the epoch-millisecond time of the
// last edit and decides precedence during a merge. Weak is derived from
// Password whenever an entry is loaded or saved and is never serialized.
type Entry struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Website   string `json:"website"`
	Notes     string `json:"notes"`
	Timestamp int64  `json:"timestamp"`

	Weak bool `json:"-"`
}

// UserDataSnapshot is the whole entry collection of one user as it is
// encoded into a blob.
//
// Entries are kept sorted ascending by case-folded ID and never hold two
// entries with the same folded ID. Timestamp is bumped on every mutation
// before the snapshot is persisted; zero means "nothing loaded yet".
type UserDataSnapshot struct {
	Schema    int     `json:"schema"`
	Timestamp int64   `json:"timestamp"`
	Entries   []Entry `json:"entries"`
}

// NewUserDataSnapshot returns an empty snapshot of the current schema.
func NewUserDataSnapshot() UserDataSnapshot {
	return UserDataSnapshot{
		Schema:  SchemaVersion,
		Entries: []Entry{},
	}
}

// Clone returns a deep copy of the snapshot so callers can mutate the entry
// slice without touching the original.
func (s UserDataSnapshot) Clone() UserDataSnapshot {
	entries := make([]Entry, len(s.Entries))
	copy(entries, s.Entries)
	s.Entries = entries
	return s
}
