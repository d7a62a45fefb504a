// Package services implements the pipeline engine's public operations.
// It never speaks HTTP; callers map the typed errors defined here onto
// whatever transport they expose.
package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrForbidden is returned when the caller does not own the target project
	ErrForbidden = errors.New("not authorized")

	// ErrNotValidated is returned when an operation requires a validated stage
	ErrNotValidated = errors.New("stage must be validated first")

	// ErrNoCodeForStage is returned when an operation requires generated code
	ErrNoCodeForStage = errors.New("no generated code for stage")
)

// ValidationError wraps field-specific input validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StagesNotValidatedError is returned by code generation when one or more
// stages of the project have not passed validation.
type StagesNotValidatedError struct {
	StageNames []string
}

func (e *StagesNotValidatedError) Error() string {
	return fmt.Sprintf("all stages must be validated before generating code; unvalidated stages: %s",
		strings.Join(e.StageNames, ", "))
}

// GenerationError is returned when code generation failed for a stage.
// The whole project-level operation aborts without persisting anything.
type GenerationError struct {
	StageID   int
	StageName string
	Reason    string
	Err       error
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("code generation failed for stage %q (id=%d): %s", e.StageName, e.StageID, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Typed errors from deeper layers cross this package unchanged:
// *codegen.ParseError, *retrieval.NotReadyError, and *llm.Error are part
// of the engine's error surface alongside the types above.
