package kv

import (
	"sort"
	"sync"

	dterrors "github.com/dbmrq/devtracker/internal/errors"
)

// MemoryBackend keeps values in a map for the life of the process.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (b *MemoryBackend) Get(key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.data[key]
	if !ok {
		return nil, dterrors.KeyNotFound(key)
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (b *MemoryBackend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = append([]byte(nil), value...)
	return nil
}

// Keys returns the stored keys in sorted order.
func (b *MemoryBackend) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Close is a no-op.
func (b *MemoryBackend) Close() error {
	return nil
}

// Unavailable is a backend for contexts without persistence. Every call
// fails with errors.ErrStorageUnavailable.
type Unavailable struct {
	// Reason is reported as the error cause.
	Reason error
}

// Get always fails.
func (u Unavailable) Get(key string) ([]byte, error) {
	return nil, dterrors.StorageUnavailable("unavailable", "", u.Reason)
}

// Set always fails.
func (u Unavailable) Set(key string, value []byte) error {
	return dterrors.StorageUnavailable("unavailable", "", u.Reason)
}

// Close is a no-op.
func (u Unavailable) Close() error {
	return nil
}
