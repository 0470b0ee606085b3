package model

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every package. Match with errors.Is.
var (
	// ErrEmptyField reports a required string field that was empty.
	ErrEmptyField = errors.New("empty field")

	// ErrInvalidArgument reports a zero-valued or out-of-domain argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorruptBackup reports backup text that could not be decoded.
	ErrCorruptBackup = errors.New("corrupt backup")

	// ErrIO reports a failure of the underlying storage.
	ErrIO = errors.New("io failure")
)

// FieldError is a validation failure on a named field.
type FieldError struct {
	Field string // name of the offending field, e.g. "title"
	Err   error  // ErrEmptyField or ErrInvalidArgument
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrEmptyField) {
		return fmt.Sprintf("%s must not be empty", e.Field)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *FieldError) Unwrap() error {
	return e.Err
}

func emptyField(field string) error {
	return &FieldError{Field: field, Err: ErrEmptyField}
}

func invalidField(field, format string, args ...any) error {
	return &FieldError{
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)),
	}
}
