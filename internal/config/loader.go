// Package config provides configuration loading and management for devtracker.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".devtracker/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "DEVTRACKER"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// A missing file is not an error: the defaults are used.
// If path is empty, it uses DefaultConfigPath relative to the working directory.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := NewConfig()

	if _, err := os.Stat(path); err == nil {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to read config file",
				Err:     err,
			}
		}
		if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to parse config file",
				Err:     err,
			}
		}
	} else if !os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to stat config file",
			Err:     err,
		}
	}

	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .devtracker/config.yaml in the specified directory.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	return l.LoadConfig(filepath.Join(dir, DefaultConfigPath))
}

// applyEnvOverrides applies environment variable overrides to the config.
// Viper's AutomaticEnv only covers keys present in the file, so every key
// is checked explicitly.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = ParseBackend(v)
	}
	if v := os.Getenv(EnvPrefix + "_STORAGE_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_STORAGE_SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv(EnvPrefix + "_STORAGE_QUEUE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Storage.QueueSize = n
		}
	}

	if v := os.Getenv(EnvPrefix + "_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_CONSOLE"); v != "" {
		cfg.Logging.Console = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_JSON"); v != "" {
		cfg.Logging.JSON = parseBool(v)
	}

	if v := os.Getenv(EnvPrefix + "_DEFAULTS_PROJECT_NAME"); v != "" {
		cfg.Defaults.ProjectName = v
	}
	if v := os.Getenv(EnvPrefix + "_DEFAULTS_NEXT_MILESTONE"); v != "" {
		cfg.Defaults.NextMilestone = v
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook composes the standard mapstructure hooks with ours.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToBackendHookFunc(),
	)
}

// stringToBackendHookFunc normalizes storage.backend while decoding.
func stringToBackendHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(StorageBackend("")) {
			return data, nil
		}
		return ParseBackend(data.(string)), nil
	}
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	header := []byte("# devtracker configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadFromDir is a convenience function that loads configuration from a directory.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dir)
}
