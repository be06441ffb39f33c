package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dbmrq/devtracker/internal/logging"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, BackendFile)
	}
	if cfg.Storage.Dir != ".devtracker/data" {
		t.Errorf("Storage.Dir = %q, want .devtracker/data", cfg.Storage.Dir)
	}
	if cfg.Storage.QueueSize != DefaultQueueSize {
		t.Errorf("Storage.QueueSize = %d, want %d", cfg.Storage.QueueSize, DefaultQueueSize)
	}
	if cfg.Defaults.ProjectName != "My Roblox Horror Game" {
		t.Errorf("Defaults.ProjectName = %q", cfg.Defaults.ProjectName)
	}
	if cfg.Defaults.NextMilestone != "Halloween Playtest 10/31" {
		t.Errorf("Defaults.NextMilestone = %q", cfg.Defaults.NextMilestone)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{Backend: BackendSQLite},
		Logging: LoggingConfig{Level: "debug"},
	}
	cfg.ApplyDefaults()

	if cfg.Storage.Backend != BackendSQLite {
		t.Error("ApplyDefaults should keep an explicit backend")
	}
	if cfg.Storage.SQLitePath == "" || cfg.Storage.Dir == "" {
		t.Error("ApplyDefaults should fill storage paths")
	}
	if cfg.Logging.Level != "debug" {
		t.Error("ApplyDefaults should keep an explicit log level")
	}
	if cfg.Logging.MaxFiles != DefaultMaxLogFiles {
		t.Errorf("Logging.MaxFiles = %d, want %d", cfg.Logging.MaxFiles, DefaultMaxLogFiles)
	}
	if cfg.Defaults.ProjectName != DefaultProjectName {
		t.Error("ApplyDefaults should fill the default project name")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"bad backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage.backend"},
		{"negative queue", func(c *Config) { c.Storage.QueueSize = -1 }, "storage.queue_size"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"negative max files", func(c *Config) { c.Logging.MaxFiles = -2 }, "logging.max_files"},
		{"negative max age", func(c *Config) { c.Logging.MaxAgeDays = -2 }, "logging.max_age_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var errs ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := (ValidationErrors{}).Error(); got != "" {
		t.Errorf("empty Error() = %q", got)
	}

	one := ValidationErrors{{Field: "a", Message: "bad"}}
	if got := one.Error(); got != "a: bad" {
		t.Errorf("single Error() = %q", got)
	}

	two := ValidationErrors{{Field: "a", Message: "bad"}, {Field: "b", Message: "worse"}}
	if got := two.Error(); !strings.HasPrefix(got, "multiple validation errors:") || !strings.Contains(got, "b: worse") {
		t.Errorf("multi Error() = %q", got)
	}
}

func TestStorageBackend_IsValid(t *testing.T) {
	for _, b := range ValidBackends {
		if !b.IsValid() {
			t.Errorf("%q should be valid", b)
		}
	}
	if StorageBackend("etcd").IsValid() {
		t.Error("etcd should not be valid")
	}
	if got := strings.Join(BackendNames(), ","); got != "file,sqlite,memory" {
		t.Errorf("BackendNames() = %q", got)
	}
}

func TestParseBackend(t *testing.T) {
	if got := ParseBackend("  SQLite "); got != BackendSQLite {
		t.Errorf("ParseBackend = %q, want sqlite", got)
	}
}

func TestLoggerConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Logging.Level = "warn"
	cfg.Logging.Dir = "/tmp/dt-logs"
	cfg.Logging.MaxAgeDays = 2
	cfg.Logging.JSON = true

	lc := cfg.LoggerConfig()
	if lc.Level != logging.LevelWarn {
		t.Errorf("Level = %v, want WARN", lc.Level)
	}
	if lc.LogDir != "/tmp/dt-logs" {
		t.Errorf("LogDir = %q", lc.LogDir)
	}
	if lc.MaxLogAge != 48*time.Hour {
		t.Errorf("MaxLogAge = %v, want 48h", lc.MaxLogAge)
	}
	if !lc.JSONFormat {
		t.Error("JSONFormat should be set")
	}
}
