// Package localstore provides a key-value implementation of the
// storage.Store interface backed by SQLite.
//
// Each collection is held as a single JSON-serialized array under a
// well-known key ("contacts", "groups"), mirroring the layout a browser
// local-storage client would use. Every operation reads the whole array,
// modifies it in memory, and writes it back.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/contactbook/internal/apperror"
	"github.com/mmynk/contactbook/internal/storage"
)

// Storage keys for the two persisted collections.
const (
	keyContacts = "contacts"
	keyGroups   = "groups"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Ensure LocalStore implements storage.Store
var _ storage.Store = (*LocalStore)(nil)

// LocalStore implements storage.Store over a single SQLite kv table.
type LocalStore struct {
	db *sql.DB
}

// New creates a new LocalStore with the given database path.
// It creates the parent directories and the kv table automatically.
func New(path string) (*LocalStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &LocalStore{db: db}, nil
}

// Close closes the database connection.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// getAll reads the JSON array stored under key into dest. A missing key
// leaves dest untouched (callers start from an empty slice). A value that
// fails to parse is reported as corrupt storage.
func (s *LocalStore) getAll(ctx context.Context, key string, dest any) error {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM kv WHERE key = ?", key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return apperror.Wrap(
			fmt.Sprintf("stored %s data is corrupt", key),
			apperror.CodeCorrupt, err,
		)
	}
	return nil
}

// saveAll serializes items and replaces the value stored under key.
func (s *LocalStore) saveAll(ctx context.Context, key string, items any) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return apperror.Wrap(
			fmt.Sprintf("failed to serialize %s", key),
			apperror.CodeStorage, err,
		)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return apperror.Wrap(
			fmt.Sprintf("failed to write %s", key),
			apperror.CodeStorage, err,
		)
	}
	return nil
}
