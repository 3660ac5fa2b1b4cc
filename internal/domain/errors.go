package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared across services. Controllers map these to HTTP status codes.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrForbidden             = errors.New("forbidden")
	ErrDuplicateRegistration = errors.New("already registered for this event")
	ErrCapacityExceeded      = errors.New("event is fully booked")
)

// ValidationError lists what is wrong with an input. errors.Is matches it against ErrInvalidInput.
type ValidationError struct {
	Problems []string
}

// NewValidationError returns a ValidationError with the given problems.
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
