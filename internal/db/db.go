// Package db opens the twinsight evidence store and keeps its schema current.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

// OpenDB opens the store at path, creating the parent directory and the
// schema on first use. WAL journaling and foreign key enforcement ride on
// the DSN so every pooled connection picks them up, not just the first.
// Pass ":memory:" for an ephemeral store.
func OpenDB(path string) (*sql.DB, error) {
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	store, err := sql.Open("sqlite", storeDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if path == memoryPath {
		// The pool must stay on a single connection, otherwise every pooled
		// connection gets its own empty in-memory database.
		store.SetMaxOpenConns(1)
	}

	if err := Migrate(store); err != nil {
		store.Close()
		return nil, fmt.Errorf("migrating store: %w", err)
	}
	return store, nil
}

func storeDSN(path string) string {
	const pragmas = "_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	if path == memoryPath {
		return "file::memory:?" + pragmas
	}
	return "file:" + path + "?" + pragmas
}
