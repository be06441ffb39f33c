package kv

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	dterrors "github.com/dbmrq/devtracker/internal/errors"

	// Pure-Go SQLite driver, registers "sqlite".
	_ "modernc.org/sqlite"
)

const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	);
`

var errClosed = errors.New("backend closed")

// SQLiteBackend stores all keys in one table of a SQLite database.
type SQLiteBackend struct {
	path string
	db   *sql.DB
	mu   sync.RWMutex
}

// NewSQLiteBackend opens or creates the database at path.
// Use ":memory:" for a throwaway database.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, dterrors.StorageUnavailable("sqlite", path, err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, dterrors.StorageUnavailable("sqlite", path, fmt.Errorf("open database: %w", err))
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, dterrors.StorageUnavailable("sqlite", path, fmt.Errorf("ping database: %w", err))
	}
	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, dterrors.StorageUnavailable("sqlite", path, fmt.Errorf("init schema: %w", err))
	}

	return &SQLiteBackend{path: path, db: db}, nil
}

// Path returns the database location.
func (b *SQLiteBackend) Path() string {
	return b.path
}

// Get reads the value stored under key.
func (b *SQLiteBackend) Get(key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.db == nil {
		return nil, dterrors.StorageUnavailable("sqlite", b.path, errClosed)
	}

	var value []byte
	err := b.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dterrors.KeyNotFound(key)
	}
	if err != nil {
		return nil, dterrors.StorageUnavailable("sqlite", b.path, err)
	}
	return value, nil
}

// Set inserts or replaces the value stored under key.
func (b *SQLiteBackend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return dterrors.StorageUnavailable("sqlite", b.path, errClosed)
	}

	_, err := b.db.Exec(
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return dterrors.StorageUnavailable("sqlite", b.path, err)
	}
	return nil
}

// Close closes the database.
func (b *SQLiteBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}
