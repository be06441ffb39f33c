// Package errors provides error types with actionable suggestions for
// devtracker. Errors carry contextual details so the CLI can tell the user
// what went wrong and how to fix it.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrStorageUnavailable indicates the persistence backend is missing or inaccessible.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrDecode indicates a stored value could not be decoded.
	ErrDecode = errors.New("decode failure")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrNotFound indicates a record or key was not found.
	ErrNotFound = errors.New("not found")
)

// TrackerError is the base error type for devtracker errors.
// It wraps an underlying error and provides additional context.
type TrackerError struct {
	// Kind is the category of error (e.g., ErrStorageUnavailable).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, storage key).
	Details map[string]string
}

// Error implements the error interface.
func (e *TrackerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *TrackerError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's Kind matches the target.
func (e *TrackerError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
func (e *TrackerError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *TrackerError) WithDetails(key, value string) *TrackerError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *TrackerError) WithCause(cause error) *TrackerError {
	e.Cause = cause
	return e
}

// New creates a new TrackerError with the given kind and message.
func New(kind error, message string) *TrackerError {
	return &TrackerError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *TrackerError {
	return &TrackerError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *TrackerError {
	return &TrackerError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}
