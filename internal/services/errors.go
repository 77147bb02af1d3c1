package services

import (
	"errors"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/validator"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")

	// Category specific errors
	ErrCategoryNotFound = errors.New("category not found")

	// Session specific errors
	ErrSessionCompleted  = errors.New("session already completed")
	ErrSessionInProgress = errors.New("session still in progress")
	ErrInvalidChoice     = errors.New("choice index out of range")
)

// Use shared validation errors from the validator package
type ValidationError = validator.ValidationError
type ValidationErrors = validator.ValidationErrors

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCategoryNotFound)
}

// IsInvalidState checks if error represents an operation invalid for the
// session's current lifecycle state
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrSessionCompleted) ||
		errors.Is(err, ErrSessionInProgress)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrInvalidChoice) {
		return true
	}
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}
