// Package sealfile encrypts and decrypts single files with a password,
// producing a self-describing container that carries everything needed to
// reconstruct the original file: the key-derivation salt, the AEAD nonce,
// and an authenticated metadata record with the original filename and
// content type.
//
// # Basic Usage
//
//	fc := sealfile.New()
//
//	sealed, err := fc.Encrypt(ctx, fileBytes,
//	    sealfile.Metadata{Name: "report.pdf", Type: "application/pdf"},
//	    []byte("correct horse"), nil)
//	if err != nil {
//	    return err
//	}
//
//	fileBytes, meta, err := fc.Decrypt(ctx, sealed, []byte("correct horse"), nil)
//
// # Container Format
//
// Encrypted output uses the following byte layout:
//   - Salt (16 bytes): random salt for key derivation
//   - Nonce (12 bytes): random nonce for the AEAD cipher
//   - Ciphertext (variable): encrypted payload + authentication tag
//
// The plaintext under the ciphertext is itself framed:
//   - Metadata length (4 bytes, little-endian)
//   - Metadata record (JSON): {"name": ..., "type": ...}
//   - File bytes (to end)
//
// Salt and nonce are regenerated on every call, so encrypting the same file
// with the same password twice produces different containers and a nonce is
// never reused under a derived key.
//
// # Key Derivation
//
// Keys are derived with PBKDF2-HMAC-SHA256 at a fixed 100,000 iterations.
// The derived key lives only for the duration of one call; it is never
// cached or persisted.
//
// # Security Considerations
//
// Protected against:
//   - Unauthorized access to sealed files at rest
//   - Tampering and corruption (authenticated encryption, all-or-nothing)
//   - Rainbow-table attacks on reused passwords (fresh salt per call)
//
// Not protected against:
//   - Memory dumps while plaintext is held in memory
//   - Weak passwords (brute force is only slowed, not prevented)
//   - Metadata leakage through the container's total size
//
// A wrong password and a corrupted file produce the same error by design;
// the failure mode leaks nothing about which part of decryption failed.
//
// # Memory Model
//
// The whole file is transformed in memory in one shot — there is no
// streaming mode — so peak memory is proportional to the file size with at
// least two copies of the buffer live at once.
package sealfile
