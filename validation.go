package sealfile

import "fmt"

// Input validation helpers shared by the cipher and container code.

// ValidateKey checks if a key has the correct size.
func ValidateKey(key []byte, expectedSize int) error {
	if key == nil {
		return &ValidationError{
			Field:   "key",
			Message: "key cannot be nil",
		}
	}
	if len(key) != expectedSize {
		return &ValidationError{
			Field:   "key",
			Value:   len(key),
			Message: fmt.Sprintf("invalid key size: got %d bytes, expected %d bytes", len(key), expectedSize),
		}
	}
	return nil
}

// ValidateNonce checks if a nonce has the correct size.
func ValidateNonce(nonce []byte, expectedSize int) error {
	if nonce == nil {
		return &ValidationError{
			Field:   "nonce",
			Message: "nonce cannot be nil",
		}
	}
	if len(nonce) != expectedSize {
		return &ValidationError{
			Field:   "nonce",
			Value:   len(nonce),
			Message: fmt.Sprintf("invalid nonce size: got %d bytes, expected %d bytes", len(nonce), expectedSize),
		}
	}
	return nil
}

// ValidateSalt checks if a salt has the correct size.
func ValidateSalt(salt []byte, expectedSize int) error {
	if salt == nil {
		return &ValidationError{
			Field:   "salt",
			Message: "salt cannot be nil",
		}
	}
	if len(salt) != expectedSize {
		return &ValidationError{
			Field:   "salt",
			Value:   len(salt),
			Message: fmt.Sprintf("invalid salt size: got %d bytes, expected %d bytes", len(salt), expectedSize),
		}
	}
	return nil
}

// ValidatePassword checks that a password is usable for key derivation.
// Minimum-length policies belong to the caller; only emptiness is rejected
// here.
func ValidatePassword(password []byte) error {
	if len(password) == 0 {
		return &ValidationError{
			Field:   "password",
			Message: "password cannot be empty",
		}
	}
	return nil
}
