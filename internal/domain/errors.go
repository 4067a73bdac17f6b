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
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrStoreFailure marks a rejected or failed write to the entity store.
	// Whether the entity exists afterwards is unknown.
	ErrStoreFailure = errors.New("entity store failure")

	// ErrOwnershipAssignment marks a creation whose entity was written but
	// whose default owner could not be attached.
	ErrOwnershipAssignment = errors.New("ownership assignment failed")
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

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TermCreationError wraps any failure of the glossary term creation workflow
// with the identifier and name the caller asked for.
type TermCreationError struct {
	ID   string
	Name string
	Err  error
}

func (e *TermCreationError) Error() string {
	return fmt.Sprintf("failed to create glossary term with id: %s, name: %s: %v", e.ID, e.Name, e.Err)
}

func (e *TermCreationError) Unwrap() error { return e.Err }
