package sealfile

import (
	"crypto/sha256"
	"runtime"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2Params contains parameters for PBKDF2 key derivation.
type PBKDF2Params struct {
	Iterations int // Number of iterations (container format uses 100,000)
	KeySize    int // Derived key size in bytes (default 32 for AES-256)
}

// PBKDF2KeyDeriver implements KeyDeriver using PBKDF2-HMAC-SHA256.
type PBKDF2KeyDeriver struct {
	params PBKDF2Params
}

// NewPBKDF2KeyDeriver creates a key deriver using PBKDF2-HMAC-SHA256.
// Zero-valued params are filled with the container format's parameters.
func NewPBKDF2KeyDeriver(params PBKDF2Params) *PBKDF2KeyDeriver {
	if params.Iterations == 0 {
		params.Iterations = PBKDF2Iterations
	}
	if params.KeySize == 0 {
		params.KeySize = KeySize
	}
	return &PBKDF2KeyDeriver{params: params}
}

// DeriveKey derives an encryption key from the password and salt. The key is
// recomputed on every call; nothing is cached.
func (d *PBKDF2KeyDeriver) DeriveKey(password, salt []byte) ([]byte, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if len(salt) == 0 {
		return nil, NewValidationError("salt", salt, "salt cannot be empty")
	}

	key := pbkdf2.Key(password, salt, d.params.Iterations, d.params.KeySize, sha256.New)
	return key, nil
}

// zeroBytes overwrites a byte slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
