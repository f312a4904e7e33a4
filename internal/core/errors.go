package core

import (
	"errors"
	"fmt"
)

// ValidationKind classifies why user input was rejected.
type ValidationKind string

const (
	MissingField ValidationKind = "missing_field"
	NotNumeric   ValidationKind = "not_numeric"
)

// ExportKind classifies why a report could not be produced.
type ExportKind string

const (
	NoData ExportKind = "no_data"
)

var (
	ErrMissingField = errors.New("required field is empty")
	ErrNotNumeric   = errors.New("amount must be a number")
	ErrNoData       = errors.New("no expenses to export")
)

// ValidationError is returned when raw input cannot become an expense.
type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func newMissingField(field string) error {
	return &ValidationError{Kind: MissingField, Field: field}
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("%s: %s", e.Field, ErrMissingField)
	case NotNumeric:
		return ErrNotNumeric.Error()
	}
	return fmt.Sprintf("invalid %s", e.Field)
}

// Is lets errors.Is match the kind sentinels.
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case MissingField:
		return target == ErrMissingField
	case NotNumeric:
		return target == ErrNotNumeric
	}
	return false
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ExportError is returned when a report cannot be produced.
type ExportError struct {
	Kind ExportKind
}

func (e *ExportError) Error() string {
	if e.Kind == NoData {
		return ErrNoData.Error()
	}
	return "export failed"
}

func (e *ExportError) Is(target error) bool {
	return e.Kind == NoData && target == ErrNoData
}
