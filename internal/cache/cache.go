// Package cache persists the most recent successful API responses so the
// read-only views (calendar, portfolio, diet summary) stay usable while
// the backend is unreachable.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS responses (
	key        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	fetched_at TEXT NOT NULL
);`

// Store is a key-value cache of raw response bodies backed by sqlite.
type Store struct {
	path string
	db   *sql.DB
}

// NewStore creates a Store rooted at path. Open must be called before use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the cache under the user config directory.
func DefaultPath(appName string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, appName, "cache.db"), nil
}

func (s *Store) Open() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put stores body under key, replacing any previous entry.
func (s *Store) Put(key string, body []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO responses (key, body, fetched_at) VALUES (?, ?, ?)",
		key, body, now,
	)
	return err
}

// Get returns the cached body for key and when it was stored. The second
// return is false when the key has never been cached.
func (s *Store) Get(key string) ([]byte, time.Time, bool, error) {
	var body []byte
	var fetchedAt string
	err := s.db.QueryRow("SELECT body, fetched_at FROM responses WHERE key = ?", key).Scan(&body, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, err
	}

	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("corrupt cache timestamp for %s: %w", key, err)
	}
	return body, at, true, nil
}

// Delete removes a single entry. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM responses WHERE key = ?", key)
	return err
}

// Purge drops every entry older than maxAge and returns how many were
// removed.
func (s *Store) Purge(maxAge time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339)
	res, err := s.db.Exec("DELETE FROM responses WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
