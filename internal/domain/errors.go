package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared across packages.
var (
	ErrInvalidInput         = errors.New("invalid tax input")
	ErrMissingExtractedData = errors.New("extracted data is required")
	ErrScenarioNotFound     = errors.New("scenario not found")
	ErrUnknownFormat        = errors.New("unknown output format")
	ErrInvalidRules         = errors.New("invalid tax rules")
)

// ValidationError carries every message collected by the input validator
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError returns nil when there are no messages
func NewValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
