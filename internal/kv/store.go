package kv

import (
	"context"
	"encoding/json"
	"errors"

	dterrors "github.com/dbmrq/devtracker/internal/errors"
	"github.com/dbmrq/devtracker/internal/logging"
)

// Persister accepts the full current value of a key for write-through.
// Implementations never report failure to the caller.
type Persister interface {
	Persist(key string, value any)
}

// Store is the JSON adapter over a Backend. Save and Load never fail:
// storage and decode errors are logged and swallowed.
type Store struct {
	backend Backend
	logger  *logging.Logger
}

// NewStore wraps backend. A nil backend behaves as Unavailable and a nil
// logger uses the global logger.
func NewStore(backend Backend, logger *logging.Logger) *Store {
	if backend == nil {
		backend = Unavailable{}
	}
	if logger == nil {
		logger = logging.Global()
	}
	return &Store{
		backend: backend,
		logger:  logger.With("component", "kv", "backend", Name(backend)),
	}
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Save encodes value as JSON and writes it under key synchronously.
func (s *Store) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.keyLogger(key).Warn("encode failed, value not saved", "error", err)
		return
	}
	s.write(key, data)
}

// Persist implements Persister with a synchronous Save.
func (s *Store) Persist(key string, value any) {
	s.Save(key, value)
}

func (s *Store) write(key string, data []byte) {
	if err := s.backend.Set(key, data); err != nil {
		s.keyLogger(key).Warn("write failed, value not saved", "error", err)
		return
	}
	s.keyLogger(key).Debug("saved", "bytes", len(data))
}

// keyLogger returns the store logger tagged with the storage key.
func (s *Store) keyLogger(key string) *logging.Logger {
	return s.logger.WithContext(logging.WithStorageKey(context.Background(), key))
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Load returns the value stored under key decoded as T. It returns fallback
// when the key is absent, the backend is unavailable, or the stored bytes do
// not decode as T.
func Load[T any](s *Store, key string, fallback T) T {
	data, err := s.backend.Get(key)
	if err != nil {
		if errors.Is(err, dterrors.ErrNotFound) {
			s.keyLogger(key).Debug("key absent, using fallback")
		} else {
			s.keyLogger(key).Warn("read failed, using fallback", "error", err)
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.keyLogger(key).Warn("using fallback", "error", dterrors.DecodeFailure(key, err))
		return fallback
	}
	return v
}
