package utils

import "fmt"

// IdxError represents a structured IDX error.
type IdxError struct {
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *IdxError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

// WrapError creates a contextual error.
func WrapError(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &IdxError{
		Context: context,
		Cause:   cause,
	}
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *IdxError) Unwrap() error {
	return e.Cause
}
