package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange signals a year range that has no whole period to compound over.
	ErrInvalidRange = errors.New("invalid year range")
	// ErrInvalidBase signals a start value the rate cannot be solved from.
	ErrInvalidBase = errors.New("invalid start value")
	// ErrInvalidTarget signals an end value no real rate can reach.
	ErrInvalidTarget = errors.New("invalid end value")
)

// ValidationError ties a sentinel to the offending input field.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Err, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(sentinel error, field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...), Err: sentinel}
}

// IsValidation reports whether err is one of the input validation failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInvalidBase) ||
		errors.Is(err, ErrInvalidTarget)
}
