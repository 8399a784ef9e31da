package sealfile

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// CipherEngine provides AEAD encryption and decryption.
type CipherEngine interface {
	// Encrypt encrypts plaintext with the given nonce. The returned
	// ciphertext includes the authentication tag.
	Encrypt(nonce, plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with the given nonce. Any authentication
	// failure is reported as ErrAuthFailed.
	Decrypt(nonce, ciphertext []byte) ([]byte, error)

	// NonceSize returns the size of nonces in bytes.
	NonceSize() int

	// Overhead returns the authentication tag size in bytes.
	Overhead() int
}

// aeadEngine adapts a cipher.AEAD to the CipherEngine interface.
type aeadEngine struct {
	aead cipher.AEAD
}

func (e *aeadEngine) Encrypt(nonce, plaintext []byte) ([]byte, error) {
	if err := ValidateNonce(nonce, e.aead.NonceSize()); err != nil {
		return nil, err
	}
	return e.aead.Seal(nil, nonce, plaintext, nil), nil
}

func (e *aeadEngine) Decrypt(nonce, ciphertext []byte) ([]byte, error) {
	if err := ValidateNonce(nonce, e.aead.NonceSize()); err != nil {
		return nil, err
	}

	plaintext, err := e.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Wrong key and tampered data are indistinguishable on purpose.
		return nil, ErrAuthFailed
	}
	return plaintext, nil
}

func (e *aeadEngine) NonceSize() int {
	return e.aead.NonceSize()
}

func (e *aeadEngine) Overhead() int {
	return e.aead.Overhead()
}

// NewAESGCMEngine creates an AES-256-GCM cipher engine.
func NewAESGCMEngine(key []byte) (CipherEngine, error) {
	if err := ValidateKey(key, KeySize); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	return &aeadEngine{aead: aead}, nil
}

// NewChaCha20Poly1305Engine creates a ChaCha20-Poly1305 cipher engine.
func NewChaCha20Poly1305Engine(key []byte) (CipherEngine, error) {
	if err := ValidateKey(key, chacha20poly1305.KeySize); err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("creating ChaCha20-Poly1305 cipher: %w", err)
	}

	return &aeadEngine{aead: aead}, nil
}

// NewCipherEngine creates a cipher engine for the given suite.
func NewCipherEngine(suite Suite, key []byte) (CipherEngine, error) {
	switch suite {
	case SuiteAES256GCM:
		return NewAESGCMEngine(key)
	case SuiteChaCha20Poly1305:
		return NewChaCha20Poly1305Engine(key)
	default:
		return nil, ErrUnsupportedSuite
	}
}
