package sealfile

// Suite selects the AEAD construction used by a FileCipher.
type Suite uint8

const (
	// SuiteAES256GCM is AES-256 in Galois/Counter Mode. This is the
	// production suite; the container format commits to it.
	SuiteAES256GCM Suite = iota
	// SuiteChaCha20Poly1305 is the ChaCha20 stream cipher with a Poly1305
	// authenticator. Containers are only interoperable between FileCiphers
	// configured with the same suite.
	SuiteChaCha20Poly1305
)

// String returns the string representation of the suite.
func (s Suite) String() string {
	switch s {
	case SuiteAES256GCM:
		return "aes-256-gcm"
	case SuiteChaCha20Poly1305:
		return "chacha20-poly1305"
	default:
		return "unknown"
	}
}

const (
	// SaltSize is the length in bytes of the key-derivation salt stored at
	// the front of every container.
	SaltSize = 16

	// NonceSize is the length in bytes of the AEAD nonce that follows the
	// salt.
	NonceSize = 12

	// KeySize is the length in bytes of the derived symmetric key (AES-256).
	KeySize = 32

	// ContainerOverhead is the fixed number of bytes a container adds in
	// front of the ciphertext.
	ContainerOverhead = SaltSize + NonceSize

	// PBKDF2Iterations is the fixed iteration count for the container's key
	// derivation. It is part of the wire contract and must not vary between
	// encryption and decryption.
	PBKDF2Iterations = 100000
)

const (
	// DefaultName is substituted when a decrypted metadata record carries no
	// filename.
	DefaultName = "decrypted-file"

	// DefaultContentType is substituted when a decrypted metadata record
	// carries no content type.
	DefaultContentType = "application/octet-stream"

	// EncryptedSuffix is the conventional filename suffix for container
	// output.
	EncryptedSuffix = ".encrypted"

	// EncryptedContentType is the conventional content type for container
	// output.
	EncryptedContentType = "application/encrypted"
)

// Metadata is the record embedded, authenticated, inside every container.
// It carries what is needed to reconstruct the original file on decryption.
type Metadata struct {
	// Name is the original filename.
	Name string `json:"name"`

	// Type is the original MIME type.
	Type string `json:"type"`
}

// KeyDeriver stretches a password and salt into a symmetric key.
type KeyDeriver interface {
	// DeriveKey derives a KeySize-byte key from the password and salt.
	DeriveKey(password, salt []byte) ([]byte, error)
}
