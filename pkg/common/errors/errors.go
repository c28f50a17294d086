// Package errors defines the error vocabulary shared across the cronplan library.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates that an input value fell outside its
// documented range or enumeration. Every validation failure in the
// library wraps this sentinel, so callers can match the whole class
// with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError describes a rejected input in detail: which module
// and field rejected it, the offending value, and why.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// Error formats the validation failure as
// "module: invalid field=value (reason) - hint".
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidArgument so that validation errors match
// errors.Is(err, ErrInvalidArgument).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// NewValidationError creates a new validation error without a hint.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a usage hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// IsValidationError returns true if err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsInvalidArgument returns true if err belongs to the invalid-argument
// error class.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
