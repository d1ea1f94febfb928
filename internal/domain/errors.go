package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the mutation target does not exist in the collection.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrImportParse indicates a workbook that could not be read at all.
	ErrImportParse = errors.New("import file could not be parsed")
)

// ValidationError reports a required field that is empty or blank. The
// operation it aborts leaves no partial write behind.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

// StorageError wraps a failed durable-store write. Callers may propagate it or
// apply the default swallow-and-log policy.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage write for %q failed: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
