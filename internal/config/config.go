// Package config provides configuration data structures for devtracker.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/dbmrq/devtracker/internal/logging"
)

// Config represents the complete devtracker configuration loaded from .devtracker/config.yaml.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"  json:"storage"  mapstructure:"storage"`
	Logging  LoggingConfig  `yaml:"logging"  json:"logging"  mapstructure:"logging"`
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults" mapstructure:"defaults"`
}

// StorageBackend selects where tracker state is persisted.
type StorageBackend string

const (
	// BackendFile stores one JSON file per key in a data directory.
	BackendFile StorageBackend = "file"
	// BackendSQLite stores all keys in a single SQLite database.
	BackendSQLite StorageBackend = "sqlite"
	// BackendMemory keeps state in memory for the life of the process.
	BackendMemory StorageBackend = "memory"
)

// ValidBackends lists the accepted storage.backend values.
var ValidBackends = []StorageBackend{BackendFile, BackendSQLite, BackendMemory}

// IsValid returns true if the backend is a known value.
func (b StorageBackend) IsValid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendMemory:
		return true
	default:
		return false
	}
}

// StorageConfig configures the key-value backend.
type StorageConfig struct {
	// Backend is file, sqlite or memory (default: file).
	Backend StorageBackend `yaml:"backend" json:"backend" mapstructure:"backend"`
	// Dir is the data directory for the file backend.
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string `yaml:"sqlite_path" json:"sqlite_path" mapstructure:"sqlite_path"`
	// QueueSize bounds the pending asynchronous writes (default: 64).
	QueueSize int `yaml:"queue_size" json:"queue_size" mapstructure:"queue_size"`
}

// LoggingConfig configures the run log.
type LoggingConfig struct {
	// Level is debug, info, warn or error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is where log files are written.
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// MaxFiles is how many log files to keep.
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
	// MaxAgeDays removes log files older than this many days.
	MaxAgeDays int `yaml:"max_age_days" json:"max_age_days" mapstructure:"max_age_days"`
	// Console mirrors log output to stderr.
	Console bool `yaml:"console" json:"console" mapstructure:"console"`
	// JSON switches the log format to JSON lines.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// DefaultsConfig holds the values used before anything is persisted.
type DefaultsConfig struct {
	ProjectName   string `yaml:"project_name"   json:"project_name"   mapstructure:"project_name"`
	NextMilestone string `yaml:"next_milestone" json:"next_milestone" mapstructure:"next_milestone"`
}

// Default values.
const (
	DefaultDir           = ".devtracker"
	DefaultProjectName   = "My Roblox Horror Game"
	DefaultNextMilestone = "Halloween Playtest 10/31"
	DefaultQueueSize     = 64
	DefaultLogLevel      = "info"
	DefaultMaxLogFiles   = 10
	DefaultMaxLogAgeDays = 7
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:    BackendFile,
			Dir:        filepath.Join(DefaultDir, "data"),
			SQLitePath: filepath.Join(DefaultDir, "devtracker.db"),
			QueueSize:  DefaultQueueSize,
		},
		Logging: LoggingConfig{
			Level:      DefaultLogLevel,
			Dir:        filepath.Join(DefaultDir, "logs"),
			MaxFiles:   DefaultMaxLogFiles,
			MaxAgeDays: DefaultMaxLogAgeDays,
		},
		Defaults: DefaultsConfig{
			ProjectName:   DefaultProjectName,
			NextMilestone: DefaultNextMilestone,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = defaults.Storage.Dir
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = defaults.Storage.SQLitePath
	}
	if c.Storage.QueueSize == 0 {
		c.Storage.QueueSize = defaults.Storage.QueueSize
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = defaults.Logging.Dir
	}
	if c.Logging.MaxFiles == 0 {
		c.Logging.MaxFiles = defaults.Logging.MaxFiles
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = defaults.Logging.MaxAgeDays
	}

	// An empty project name or milestone is a legitimate user value once
	// persisted, but in config it only means "not set".
	if c.Defaults.ProjectName == "" {
		c.Defaults.ProjectName = defaults.Defaults.ProjectName
	}
	if c.Defaults.NextMilestone == "" {
		c.Defaults.NextMilestone = defaults.Defaults.NextMilestone
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Storage.Backend != "" && !c.Storage.Backend.IsValid() {
		errs = append(errs, &ValidationError{
			Field:   "storage.backend",
			Message: "must be 'file', 'sqlite', or 'memory'",
		})
	}
	if c.Storage.QueueSize < 0 {
		errs = append(errs, &ValidationError{Field: "storage.queue_size", Message: "must be non-negative"})
	}

	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		errs = append(errs, &ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}
	if c.Logging.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "logging.max_files", Message: "must be non-negative"})
	}
	if c.Logging.MaxAgeDays < 0 {
		errs = append(errs, &ValidationError{Field: "logging.max_age_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoggerConfig converts the logging section into a logging.Config.
func (c *Config) LoggerConfig() *logging.Config {
	level, _ := logging.ParseLevel(c.Logging.Level)
	lc := logging.DefaultConfig()
	lc.Level = level
	lc.LogDir = c.Logging.Dir
	lc.MaxLogFiles = c.Logging.MaxFiles
	lc.MaxLogAge = time.Duration(c.Logging.MaxAgeDays) * 24 * time.Hour
	lc.Console = c.Logging.Console
	lc.JSONFormat = c.Logging.JSON
	return lc
}

// BackendNames returns the valid backends as strings for messages.
func BackendNames() []string {
	names := make([]string, len(ValidBackends))
	for i, b := range ValidBackends {
		names[i] = string(b)
	}
	return names
}

// ParseBackend normalizes a backend name from a flag or environment variable.
func ParseBackend(s string) StorageBackend {
	return StorageBackend(strings.ToLower(strings.TrimSpace(s)))
}
