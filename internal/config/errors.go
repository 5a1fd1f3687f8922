package config

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVersion is returned for tour files of another version.
var ErrUnsupportedVersion = errors.New("unsupported tour version")

// ValidationError describes an invalid step field.
type ValidationError struct {
	Step  int    // Zero-based step index, -1 for tour-level fields
	Field string // YAML field name
	Err   error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Step < 0 {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("step %d: %s: %v", e.Step+1, e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
