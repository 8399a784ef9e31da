package sealfile

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
)

// metaLenSize is the width of the little-endian length prefix in front of
// the metadata record inside the authenticated plaintext.
const metaLenSize = 4

// Container is the on-wire layout produced by encryption and consumed by
// decryption:
//
//	salt (16 bytes) || nonce (12 bytes) || ciphertext (to end of buffer)
//
// There are no length fields: salt and nonce sizes are fixed constants and
// the ciphertext runs to the end of the buffer. The plaintext under the
// ciphertext is itself framed as
//
//	metadata length (4 bytes, little-endian) || metadata JSON || file bytes
//
// where the length counts the metadata record only.
type Container struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// MarshalBinary assembles the container's wire form. The result is always
// exactly ContainerOverhead + len(Ciphertext) bytes.
func (c *Container) MarshalBinary() ([]byte, error) {
	if err := ValidateSalt(c.Salt, SaltSize); err != nil {
		return nil, err
	}
	if err := ValidateNonce(c.Nonce, NonceSize); err != nil {
		return nil, err
	}

	out := make([]byte, 0, ContainerOverhead+len(c.Ciphertext))
	out = append(out, c.Salt...)
	out = append(out, c.Nonce...)
	out = append(out, c.Ciphertext...)
	return out, nil
}

// UnmarshalBinary splits wire bytes into salt, nonce, and ciphertext. Input
// shorter than ContainerOverhead is rejected as malformed; a truncated
// ciphertext is not detectable here and surfaces later as ErrAuthFailed.
func (c *Container) UnmarshalBinary(data []byte) error {
	if len(data) < ContainerOverhead {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedContainer, len(data), ContainerOverhead)
	}

	c.Salt = append([]byte(nil), data[:SaltSize]...)
	c.Nonce = append([]byte(nil), data[SaltSize:ContainerOverhead]...)
	c.Ciphertext = append([]byte(nil), data[ContainerOverhead:]...)
	return nil
}

// encodePayload builds the inner plaintext: length-prefixed metadata record
// followed by the file bytes.
func encodePayload(meta Metadata, file []byte) ([]byte, error) {
	record, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	if uint64(len(record)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}

	buf := make([]byte, metaLenSize+len(record)+len(file))
	binary.LittleEndian.PutUint32(buf, uint32(len(record)))
	copy(buf[metaLenSize:], record)
	copy(buf[metaLenSize+len(record):], file)
	return buf, nil
}

// decodePayload splits the inner plaintext back into metadata and file
// bytes. Missing metadata fields are substituted with fixed defaults rather
// than rejected.
func decodePayload(plain []byte) (Metadata, []byte, error) {
	if len(plain) < metaLenSize {
		return Metadata{}, nil, fmt.Errorf("%w: payload shorter than metadata length prefix", ErrMalformedContainer)
	}

	recordLen := binary.LittleEndian.Uint32(plain)
	if uint64(recordLen) > uint64(len(plain)-metaLenSize) {
		return Metadata{}, nil, fmt.Errorf("%w: metadata length %d exceeds payload", ErrMalformedContainer, recordLen)
	}

	var meta Metadata
	record := plain[metaLenSize : metaLenSize+int(recordLen)]
	if err := json.Unmarshal(record, &meta); err != nil {
		return Metadata{}, nil, fmt.Errorf("%w: decoding metadata: %v", ErrMalformedContainer, err)
	}
	if meta.Name == "" {
		meta.Name = DefaultName
	}
	if meta.Type == "" {
		meta.Type = DefaultContentType
	}

	file := append([]byte(nil), plain[metaLenSize+int(recordLen):]...)
	return meta, file, nil
}
