package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalError       = errors.New("internal error")
	ErrTransactionNotFound = fmt.Errorf("transaction: %w", ErrNotFound)
	ErrProposalNotFound    = fmt.Errorf("proposal: %w", ErrNotFound)
	ErrCorruptStore        = errors.New("stored transactions are malformed")
)

// ValidationError describes a single rejected field.
// errors.Is(err, ErrInvalidInput) holds for every ValidationError.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
