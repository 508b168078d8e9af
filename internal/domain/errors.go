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
	ErrConflict      = errors.New("conflict")
)

// Session lifecycle errors.
var (
	// ErrEmptyCatalog means the catalog has no eligible items for the filter.
	ErrEmptyCatalog = errors.New("empty catalog")

	// ErrSetupFailed means a session could not be created.
	ErrSetupFailed = errors.New("session setup failed")

	// ErrOutOfOrderResponse means the response does not target the current item.
	ErrOutOfOrderResponse = errors.New("out of order response")

	ErrSessionAlreadyComplete = errors.New("session already complete")
	ErrSessionNotComplete     = errors.New("session not complete")
)

// Collaborator errors. ErrPersistence and ErrGradingUnavailable are reported
// as warnings; ErrEvaluationFailed and ErrCatalogUnavailable fail the call.
var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrPersistence        = errors.New("persistence error")
	ErrGradingUnavailable = errors.New("grading unavailable")
	ErrEvaluationFailed   = errors.New("evaluation failed")
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

// SetupError wraps the cause of a failed session creation. It matches both
// ErrSetupFailed and the underlying cause (for example ErrEmptyCatalog).
type SetupError struct {
	Stage string
	Err   error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("session setup failed: %s: %v", e.Stage, e.Err)
}

func (e *SetupError) Unwrap() []error { return []error{ErrSetupFailed, e.Err} }
