package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrAccessDenied    = errors.New("access denied")
	ErrSessionNotFound = errors.New("registration session not found")
	ErrSessionExpired  = errors.New("registration session expired")
)

// FieldErrors maps a field name to the messages of every rule it failed.
// All fields are checked; nothing short-circuits.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// ValidationError carries the per-field messages of a rejected candidate
// record. It is always surfaced to the end user, never logged as a fault.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// StorageError wraps a Record Store failure (connectivity, constraint,
// timeout). The submission is not retried; the caller decides what to do.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failed: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
