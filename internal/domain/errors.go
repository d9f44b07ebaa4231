package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	// ErrNoWitnesses is returned when a reduction is requested with no
	// witness list at all (nil). An empty, non-nil list is a valid input
	// that yields an empty result.
	ErrNoWitnesses = errors.New("no witness list")
	// ErrRegistryUnavailable marks a constant registry that cannot be
	// reached. Reductions degrade to nil constants rather than failing.
	ErrRegistryUnavailable = errors.New("constant registry unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// InvalidModeError reports an unrecognized reduction mode. It is surfaced
// to the caller and never retried.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q (want open or skeptic)", e.Value)
}

func (e *InvalidModeError) Unwrap() error { return ErrValidation }

// MalformedWitnessError reports a witness sense unit missing a required
// field or carrying a source unknown for the run's language. The witness
// is dropped from clustering with a recorded warning; it is never fatal
// to the whole run.
type MalformedWitnessError struct {
	Source   Source
	SenseRef string
	Reason   string
}

func (e *MalformedWitnessError) Error() string {
	return fmt.Sprintf("malformed witness %s/%s: %s", e.Source, e.SenseRef, e.Reason)
}

func (e *MalformedWitnessError) Unwrap() error { return ErrValidation }

// DuplicateWitnessError reports two witnesses sharing (source, sense_ref)
// within one run. The second occurrence is dropped with a warning, never
// silently overwritten and never a hard failure.
type DuplicateWitnessError struct {
	Key WitnessKey
}

func (e *DuplicateWitnessError) Error() string {
	return fmt.Sprintf("duplicate witness %s/%s", e.Key.Source, e.Key.SenseRef)
}

func (e *DuplicateWitnessError) Unwrap() error { return ErrValidation }
