package sealfile

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
)

// FileCipher transforms a plaintext file plus password into a self-contained
// encrypted container, and the reverse. Every call generates its own salt
// and nonce and derives its own key, so a single FileCipher is safe for
// concurrent use.
type FileCipher struct {
	random  io.Reader
	deriver KeyDeriver
	suite   Suite
}

// Option configures a FileCipher.
type Option func(*FileCipher)

// WithRandom sets the source of salt and nonce bytes. Production code uses
// crypto/rand; tests may inject a deterministic source.
func WithRandom(r io.Reader) Option {
	return func(fc *FileCipher) {
		fc.random = r
	}
}

// WithKeyDeriver sets the key derivation function.
func WithKeyDeriver(d KeyDeriver) Option {
	return func(fc *FileCipher) {
		fc.deriver = d
	}
}

// WithSuite sets the AEAD suite. Containers are only interoperable between
// FileCiphers configured with the same suite; the default, SuiteAES256GCM,
// is the one the container format commits to.
func WithSuite(s Suite) Option {
	return func(fc *FileCipher) {
		fc.suite = s
	}
}

// New creates a FileCipher. Without options it uses crypto/rand,
// PBKDF2-HMAC-SHA256 with the container's fixed parameters, and AES-256-GCM.
func New(opts ...Option) *FileCipher {
	fc := &FileCipher{
		random:  rand.Reader,
		deriver: NewPBKDF2KeyDeriver(PBKDF2Params{}),
		suite:   SuiteAES256GCM,
	}
	for _, opt := range opts {
		opt(fc)
	}
	return fc
}

// Encrypt encrypts plaintext under password and returns container bytes:
// a fresh 16-byte salt and 12-byte nonce followed by the AEAD ciphertext of
// the length-prefixed metadata record and the file bytes. The output is
// always ContainerOverhead bytes plus ciphertext. plaintext may be empty.
//
// ctx is consulted at the expensive steps (key derivation, the AEAD
// transform); cancellation returns the context's error with no output.
func (fc *FileCipher) Encrypt(ctx context.Context, plaintext []byte, meta Metadata, password []byte, progress ProgressReporter) ([]byte, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	report(progress, progressStart)

	salt, err := fc.randomBytes(SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	nonce, err := fc.randomBytes(NonceSize)
	if err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := fc.deriver.DeriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	defer zeroBytes(key)
	report(progress, progressKeyDerived)

	engine, err := NewCipherEngine(fc.suite, key)
	if err != nil {
		return nil, err
	}

	inner, err := encodePayload(meta, plaintext)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ciphertext, err := engine.Encrypt(nonce, inner)
	if err != nil {
		return nil, fmt.Errorf("encrypting payload: %w", err)
	}
	report(progress, progressTransformed)

	container := Container{Salt: salt, Nonce: nonce, Ciphertext: ciphertext}
	out, err := container.MarshalBinary()
	if err != nil {
		return nil, err
	}

	report(progress, progressDone)
	return out, nil
}

// Decrypt reverses Encrypt: it splits data into salt, nonce, and ciphertext,
// re-derives the key from password and salt, authenticates and decrypts the
// payload, and restores the embedded metadata. Inputs shorter than
// ContainerOverhead fail with ErrMalformedContainer; any decryption failure
// — wrong password, tampering, or truncation — fails with ErrAuthFailed and
// no partial output.
func (fc *FileCipher) Decrypt(ctx context.Context, data []byte, password []byte, progress ProgressReporter) ([]byte, Metadata, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, Metadata{}, err
	}
	report(progress, progressStart)

	var container Container
	if err := container.UnmarshalBinary(data); err != nil {
		return nil, Metadata{}, err
	}

	if err := ctx.Err(); err != nil {
		return nil, Metadata{}, err
	}
	key, err := fc.deriver.DeriveKey(password, container.Salt)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("deriving key: %w", err)
	}
	defer zeroBytes(key)
	report(progress, progressKeyDerived)

	engine, err := NewCipherEngine(fc.suite, key)
	if err != nil {
		return nil, Metadata{}, err
	}

	if err := ctx.Err(); err != nil {
		return nil, Metadata{}, err
	}
	plain, err := engine.Decrypt(container.Nonce, container.Ciphertext)
	if err != nil {
		return nil, Metadata{}, err
	}
	report(progress, progressTransformed)

	meta, file, err := decodePayload(plain)
	if err != nil {
		return nil, Metadata{}, err
	}

	report(progress, progressDone)
	return file, meta, nil
}

func (fc *FileCipher) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(fc.random, b); err != nil {
		return nil, err
	}
	return b, nil
}
