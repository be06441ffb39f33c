// Package kv provides the key-value persistence layer for devtracker.
//
// A Backend stores opaque bytes per key. Store and Writer sit on top of a
// Backend and own the JSON encoding, error tolerance and logging, so callers
// never see a storage or decode failure.
package kv

import (
	"fmt"
	"strings"
)

// Backend is a byte-oriented key-value store.
//
// Get returns an error matching errors.ErrNotFound when the key is absent and
// errors.ErrStorageUnavailable when the backend cannot be read.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Name returns a short human-readable name for a backend.
func Name(b Backend) string {
	switch b.(type) {
	case *FileBackend:
		return "file"
	case *SQLiteBackend:
		return "sqlite"
	case *MemoryBackend:
		return "memory"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("%T", b)
	}
}

// validateKey rejects keys that cannot be used as a file name.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
