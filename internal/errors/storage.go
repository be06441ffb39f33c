// Package errors provides error types for devtracker.
// This file contains storage-related errors.
package errors

import "fmt"

// StorageUnavailable creates an error for a backend that cannot be opened or used.
func StorageUnavailable(backend, location string, cause error) *TrackerError {
	err := &TrackerError{
		Kind:    ErrStorageUnavailable,
		Message: fmt.Sprintf("%s storage unavailable", backend),
		Cause:   cause,
		Details: map[string]string{
			"backend": backend,
		},
		Suggestion: `Changes are kept in memory for this session only.

Check that the data directory exists and is writable, or pick another backend:
  devtracker --backend file --data-dir ~/.devtracker`,
	}
	if location != "" {
		err.Details["location"] = location
	}
	return err
}

// KeyNotFound creates an error for an absent storage key.
func KeyNotFound(key string) *TrackerError {
	return &TrackerError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("key not found: %s", key),
		Details: map[string]string{"key": key},
	}
}

// DecodeFailure creates an error for a stored value that is not valid JSON.
func DecodeFailure(key string, cause error) *TrackerError {
	return &TrackerError{
		Kind:    ErrDecode,
		Message: fmt.Sprintf("stored value for %s is not valid JSON", key),
		Cause:   cause,
		Details: map[string]string{"key": key},
	}
}
