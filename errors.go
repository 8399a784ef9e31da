package sealfile

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by container and cipher operations.
var (
	// ErrMalformedContainer indicates input too short to hold a salt and
	// nonce, or inner framing inconsistent with the decrypted length.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrAuthFailed indicates AEAD decryption failed. A wrong password and a
	// tampered or truncated ciphertext are indistinguishable here; callers
	// must not attempt to tell them apart.
	ErrAuthFailed = errors.New("wrong password or corrupted file")

	// ErrTooLarge indicates a metadata record that cannot be represented in
	// the container's 32-bit length prefix.
	ErrTooLarge = errors.New("metadata record too large")

	// ErrUnsupportedSuite indicates an unknown cipher suite.
	ErrUnsupportedSuite = errors.New("unsupported cipher suite")
)

// ValidationError represents a parameter validation failure.
type ValidationError struct {
	Field   string // The parameter that failed validation
	Value   any    // The invalid value
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error.
func NewValidationError(field string, value any, message string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAuthFailure checks if an error is an authentication failure.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrAuthFailed)
}

// IsMalformedContainer checks if an error is a container framing failure.
func IsMalformedContainer(err error) bool {
	return errors.Is(err, ErrMalformedContainer)
}
