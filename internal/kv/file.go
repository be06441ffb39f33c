package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	dterrors "github.com/dbmrq/devtracker/internal/errors"
)

// fileExt is appended to every key to form its file name.
const fileExt = ".json"

// FileBackend stores each key as <dir>/<key>.json.
type FileBackend struct {
	dir string
	mu  sync.RWMutex
}

// NewFileBackend creates the data directory if needed and returns a backend rooted at it.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dterrors.StorageUnavailable("file", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

// Dir returns the data directory.
func (b *FileBackend) Dir() string {
	return b.dir
}

// Path returns the file that holds key.
func (b *FileBackend) Path(key string) string {
	return filepath.Join(b.dir, key+fileExt)
}

// Get reads the file for key.
func (b *FileBackend) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, dterrors.KeyNotFound(key).WithCause(err)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	data, err := os.ReadFile(b.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dterrors.KeyNotFound(key)
		}
		return nil, dterrors.StorageUnavailable("file", b.Path(key), err)
	}
	return data, nil
}

// Set replaces the file for key. The new content is written to a temporary
// file in the same directory and renamed over the old one.
func (b *FileBackend) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return dterrors.StorageUnavailable("file", b.dir, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tmp, err := os.CreateTemp(b.dir, "."+key+".*.tmp")
	if err != nil {
		return dterrors.StorageUnavailable("file", b.dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return dterrors.StorageUnavailable("file", tmpPath, fmt.Errorf("write: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return dterrors.StorageUnavailable("file", tmpPath, fmt.Errorf("close: %w", err))
	}
	if err := os.Rename(tmpPath, b.Path(key)); err != nil {
		os.Remove(tmpPath)
		return dterrors.StorageUnavailable("file", b.Path(key), fmt.Errorf("rename: %w", err))
	}
	return nil
}

// Close is a no-op; files are not held open.
func (b *FileBackend) Close() error {
	return nil
}
