// Package errors provides error types for devtracker.
// This file contains configuration and lookup errors.
package errors

import (
	"fmt"
	"strings"
)

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *TrackerError {
	return &TrackerError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes

Regenerate a default file with:
  devtracker init --force`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *TrackerError {
	suggestion := fmt.Sprintf("Fix the %q field in .devtracker/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &TrackerError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// ConfigExists creates an error when init would overwrite a config file.
func ConfigExists(configPath string) *TrackerError {
	return &TrackerError{
		Kind:       ErrConfig,
		Message:    fmt.Sprintf("configuration already exists: %s", configPath),
		Details:    map[string]string{"path": configPath},
		Suggestion: "Use 'devtracker init --force' to overwrite it.",
	}
}

// TaskNotFound creates an error when no task has the given id.
func TaskNotFound(taskID string) *TrackerError {
	return &TrackerError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("task not found: %s", taskID),
		Details: map[string]string{
			"task_id": taskID,
		},
		Suggestion: "List task ids with: devtracker task list",
	}
}

// FeedbackNotFound creates an error when no feedback entry has the given id.
func FeedbackNotFound(feedbackID string) *TrackerError {
	return &TrackerError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("feedback entry not found: %s", feedbackID),
		Details: map[string]string{
			"feedback_id": feedbackID,
		},
		Suggestion: "List feedback ids with: devtracker feedback list",
	}
}

// UnknownChecklistItem creates an error for an unrecognized checklist key.
func UnknownChecklistItem(item string, valid []string) *TrackerError {
	return &TrackerError{
		Kind:       ErrNotFound,
		Message:    fmt.Sprintf("unknown checklist item: %s", item),
		Details:    map[string]string{"item": item},
		Suggestion: fmt.Sprintf("Valid items: %s", strings.Join(valid, ", ")),
	}
}
