package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dbmrq/devtracker/internal/config"
	dterrors "github.com/dbmrq/devtracker/internal/errors"
	"github.com/dbmrq/devtracker/internal/kv"
	"github.com/dbmrq/devtracker/internal/logging"
	"github.com/dbmrq/devtracker/internal/tracker"
)

// globalFlags holds the persistent flags of the root command.
type globalFlags struct {
	configPath string
	dataDir    string
	backend    string
	ephemeral  bool
	verbose    bool
}

// app is shared by every command of one tree.
type app struct {
	flags globalFlags
}

// session is everything one invocation opens: config, logger, storage
// and the hydrated tracker.
type session struct {
	id      string
	ctx     context.Context
	cfg     *config.Config
	logger  *logging.Logger
	backend kv.Backend
	store   *kv.Store
	writer  *kv.Writer
	tracker *tracker.Tracker
}

// Unsaved reports whether changes in this session are kept in memory only.
func (s *session) Unsaved() bool {
	_, ok := s.backend.(kv.Unavailable)
	return ok
}

// loadConfig reads the config file and applies the global flag overrides.
func (a *app) loadConfig() (*config.Config, error) {
	path := a.flags.configPath
	if path == "" {
		path = config.DefaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, configError(path, err)
	}

	if err := a.applyStorageFlags(cfg); err != nil {
		return nil, err
	}
	if a.flags.ephemeral {
		cfg.Storage.Backend = config.BackendMemory
	}
	if a.flags.verbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}

// applyStorageFlags points storage and logs at --data-dir and selects
// --backend.
func (a *app) applyStorageFlags(cfg *config.Config) error {
	if a.flags.dataDir != "" {
		cfg.Storage.Dir = a.flags.dataDir
		cfg.Storage.SQLitePath = filepath.Join(a.flags.dataDir, "devtracker.db")
		cfg.Logging.Dir = filepath.Join(a.flags.dataDir, "logs")
	}
	if a.flags.backend != "" {
		backend := config.ParseBackend(a.flags.backend)
		if !backend.IsValid() {
			return dterrors.ConfigValidationError("storage.backend",
				fmt.Sprintf("unknown backend %q", a.flags.backend), config.BackendNames())
		}
		cfg.Storage.Backend = backend
	}
	return nil
}

// configError turns a loader failure into a tracker error with a suggestion.
func configError(path string, err error) error {
	var loadErr *config.LoadError
	if !errors.As(err, &loadErr) {
		return err
	}

	var verrs config.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		var options []string
		if first.Field == "storage.backend" {
			options = config.BackendNames()
		}
		return dterrors.ConfigValidationError(first.Field, first.Message, options).
			WithDetails("path", path).
			WithCause(err)
	}
	return dterrors.ConfigParseError(path, err)
}

// initLogger installs the run logger as the global logger and returns it.
// Ephemeral runs never write log files.
func (a *app) initLogger(cmd *cobra.Command, cfg *config.Config) *logging.Logger {
	lc := cfg.LoggerConfig()

	if a.flags.ephemeral {
		if a.flags.verbose {
			logging.SetGlobal(logging.NewWriter(cmd.ErrOrStderr(), lc))
		} else {
			logging.SetGlobal(logging.NewNoop())
		}
		return logging.Global()
	}

	if err := logging.InitGlobal(lc); err != nil {
		logging.SetGlobal(logging.NewWriter(cmd.ErrOrStderr(), lc))
		logging.Warn("file logging disabled", "dir", lc.LogDir, "error", err)
	}
	return logging.Global()
}

// open loads config, starts logging, opens storage and hydrates the tracker.
// Storage failures never stop the run: the tracker keeps its state in
// memory and the session reports Unsaved.
func (a *app) open(cmd *cobra.Command) (*session, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	id := uuid.NewString()
	ctx = logging.WithSessionID(ctx, id)

	logger := a.initLogger(cmd, cfg).WithContext(ctx)

	backend := kv.OpenOrUnavailable(cfg.Storage, logger)
	store := kv.NewStore(backend, logger)
	writer := kv.NewWriter(store, cfg.Storage.QueueSize)

	tr := tracker.New(store, writer,
		tracker.WithDefaults(tracker.ProjectMeta{
			ProjectName:   cfg.Defaults.ProjectName,
			NextMilestone: cfg.Defaults.NextMilestone,
		}),
		tracker.WithLogger(logger),
	)
	tr.Initialize()

	logger.Debug("session started",
		"command", cmd.CommandPath(),
		"backend", kv.Name(backend))

	return &session{
		id:      id,
		ctx:     ctx,
		cfg:     cfg,
		logger:  logger,
		backend: backend,
		store:   store,
		writer:  writer,
		tracker: tr,
	}, nil
}

// close drains pending writes, then closes storage and the log file.
func (s *session) close() error {
	if err := s.writer.Close(); err != nil {
		s.logger.Warn("writer close failed", "error", err)
	}
	written, dropped := s.writer.Stats()
	s.logger.Debug("session ended", "written", written, "dropped", dropped)

	err := s.store.Close()
	if cerr := logging.CloseGlobal(); err == nil {
		err = cerr
	}
	return err
}

// withSession runs fn against a freshly opened session and always closes it,
// so the last write is flushed even when fn fails.
func (a *app) withSession(cmd *cobra.Command, fn func(s *session) error) error {
	s, err := a.open(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); cerr != nil {
			s.logger.Warn("session close failed", "error", cerr)
		}
	}()
	if s.Unsaved() {
		cmd.PrintErrln("Warning: storage is unavailable. Changes made in this run will not be saved.")
	}
	return fn(s)
}
