package kv

import (
	"fmt"

	"github.com/dbmrq/devtracker/internal/config"
	dterrors "github.com/dbmrq/devtracker/internal/errors"
	"github.com/dbmrq/devtracker/internal/logging"
)

// Open returns the backend selected by cfg.
func Open(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		b, err := NewFileBackend(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return b, nil
	case config.BackendSQLite:
		b, err := NewSQLiteBackend(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return b, nil
	case config.BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, dterrors.ConfigValidationError(
			"storage.backend",
			fmt.Sprintf("unknown backend %q", cfg.Backend),
			config.BackendNames(),
		)
	}
}

// OpenOrUnavailable is Open that never fails. When the configured backend
// cannot be opened it logs the reason and returns Unavailable, so the
// tracker keeps working in memory.
func OpenOrUnavailable(cfg config.StorageConfig, logger *logging.Logger) Backend {
	if logger == nil {
		logger = logging.Global()
	}
	b, err := Open(cfg)
	if err != nil {
		logger.Warn("storage unavailable, changes will not be saved",
			"backend", string(cfg.Backend), "error", err)
		return Unavailable{Reason: err}
	}
	logger.Debug("storage opened", "backend", Name(b))
	return b
}
