package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrTruncatedRecord = errors.New("truncated record")
	ErrRecordTooLarge  = errors.New("record exceeds maximum element count")
	ErrInvalidDims     = errors.New("invalid record dimensions")
	ErrStreamClosed    = errors.New("stream is closed")
	ErrEmptyRecord     = errors.New("record has no elements")
)

// ValidationError provides detailed information about a rejected record header.
type ValidationError struct {
	Type    string // Type of error (e.g., "dimension_too_large", "too_many_elements")
	Field   string // Header field involved, if any
	Details string // Additional details
	Err     error  // Underlying sentinel error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s", e.Type, e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
