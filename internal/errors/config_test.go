package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigParseError(t *testing.T) {
	parseErr := errors.New("unexpected end of file")
	err := ConfigParseError("/path/config.yaml", parseErr)

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigParseError should return ErrConfig")
	}
	if !errors.Is(err.Cause, parseErr) {
		t.Error("Should wrap the parse error")
	}
	if !strings.Contains(err.Suggestion, "YAML") {
		t.Error("Suggestion should mention YAML syntax")
	}
}

func TestConfigValidationError(t *testing.T) {
	err := ConfigValidationError("storage.backend", "unknown backend", []string{"file", "sqlite", "memory"})

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigValidationError should return ErrConfig")
	}
	if err.Details["field"] != "storage.backend" {
		t.Error("Should include field in details")
	}
	if !strings.Contains(err.Suggestion, "file, sqlite, memory") {
		t.Errorf("Suggestion should list valid options, got %q", err.Suggestion)
	}
}

func TestConfigExists(t *testing.T) {
	err := ConfigExists(".devtracker/config.yaml")

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigExists should return ErrConfig")
	}
	if !strings.Contains(err.Suggestion, "--force") {
		t.Error("Suggestion should mention --force")
	}
}

func TestNotFoundErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *TrackerError
		key  string
		want string
	}{
		{"task", TaskNotFound("task_abc"), "task_id", "task_abc"},
		{"feedback", FeedbackNotFound("fb_abc"), "feedback_id", "fb_abc"},
		{"checklist", UnknownChecklistItem("zz", []string{"rn", "qa"}), "item", "zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrNotFound) {
				t.Error("should be ErrNotFound")
			}
			if tt.err.Details[tt.key] != tt.want {
				t.Errorf("Details[%q] = %q, want %q", tt.key, tt.err.Details[tt.key], tt.want)
			}
			if tt.err.Suggestion == "" {
				t.Error("should carry a suggestion")
			}
		})
	}
}
