package sealfile

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestFileCipher_RoundTrip(t *testing.T) {
	fc := New()

	tests := []struct {
		name     string
		payload  []byte
		meta     Metadata
		password string
	}{
		{"text file", []byte("Hello, World!"), Metadata{Name: "hello.txt", Type: "text/plain"}, "hunter2hunter2"},
		{"empty file", []byte{}, Metadata{Name: "empty.bin", Type: "application/octet-stream"}, "p"},
		{"binary data", []byte{0x00, 0xFF, 0x10, 0x80, 0x7F}, Metadata{Name: "blob", Type: "application/octet-stream"}, "pässwörd"},
		{"unicode name", []byte("data"), Metadata{Name: "résumé.pdf", Type: "application/pdf"}, "correct horse battery staple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := fc.Encrypt(context.Background(), tt.payload, tt.meta, []byte(tt.password), nil)
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}

			if len(sealed) != ContainerOverhead+len(tt.payload)+metaRecordLen(t, tt.meta)+16 {
				// 16 is the GCM tag; metadata record length depends on the JSON encoding
				t.Fatalf("unexpected container size: got %d", len(sealed))
			}

			plain, meta, err := fc.Decrypt(context.Background(), sealed, []byte(tt.password), nil)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}

			if !bytes.Equal(plain, tt.payload) {
				t.Fatalf("payload mismatch:\ngot:  %q\nwant: %q", plain, tt.payload)
			}
			if meta != tt.meta {
				t.Fatalf("metadata mismatch: got %+v, want %+v", meta, tt.meta)
			}
		})
	}
}

// metaRecordLen computes the encoded metadata record size plus its length prefix.
func metaRecordLen(t *testing.T, meta Metadata) int {
	t.Helper()

	inner, err := encodePayload(meta, nil)
	if err != nil {
		t.Fatalf("encodePayload failed: %v", err)
	}
	return len(inner)
}

func TestFileCipher_FixedVector(t *testing.T) {
	fc := New()

	sealed, err := fc.Encrypt(context.Background(), []byte{0x41, 0x42, 0x43},
		Metadata{Name: "a.txt", Type: "text/plain"}, []byte("correct horse"), nil)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	plain, meta, err := fc.Decrypt(context.Background(), sealed, []byte("correct horse"), nil)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(plain, []byte{0x41, 0x42, 0x43}) {
		t.Fatalf("payload mismatch: got %v", plain)
	}
	if meta.Name != "a.txt" || meta.Type != "text/plain" {
		t.Fatalf("metadata mismatch: got %+v", meta)
	}

	if _, _, err := fc.Decrypt(context.Background(), sealed, []byte("wrong horse"), nil); !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed with wrong password, got %v", err)
	}
}

func TestFileCipher_WrongPassword(t *testing.T) {
	fc := New()

	sealed, err := fc.Encrypt(context.Background(), []byte("secret data"),
		Metadata{Name: "s.txt", Type: "text/plain"}, []byte("password-one"), nil)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, _, err = fc.Decrypt(context.Background(), sealed, []byte("password-two"), nil)
	if !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got %v", err)
	}
}

func TestFileCipher_TamperDetection(t *testing.T) {
	fc := New()

	sealed, err := fc.Encrypt(context.Background(), []byte("tamper target"),
		Metadata{Name: "t.bin", Type: "application/octet-stream"}, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Flip one bit at a spread of positions across the ciphertext region,
	// including the first and last byte.
	positions := []int{ContainerOverhead, ContainerOverhead + 1, len(sealed) / 2, len(sealed) - 2, len(sealed) - 1}
	for _, pos := range positions {
		corrupted := append([]byte(nil), sealed...)
		corrupted[pos] ^= 0x01

		if _, _, err := fc.Decrypt(context.Background(), corrupted, []byte("pw123456"), nil); !errors.Is(err, ErrAuthFailed) {
			t.Fatalf("bit flip at %d: expected ErrAuthFailed, got %v", pos, err)
		}
	}
}

func TestFileCipher_Truncation(t *testing.T) {
	fc := New()

	sealed, err := fc.Encrypt(context.Background(), []byte("truncation target"),
		Metadata{Name: "t.txt", Type: "text/plain"}, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Shorter than salt+nonce is malformed.
	for _, n := range []int{0, 1, SaltSize, ContainerOverhead - 1} {
		if _, _, err := fc.Decrypt(context.Background(), sealed[:n], []byte("pw123456"), nil); !errors.Is(err, ErrMalformedContainer) {
			t.Fatalf("truncated to %d: expected ErrMalformedContainer, got %v", n, err)
		}
	}

	// Truncating within the ciphertext is an authentication failure.
	for _, n := range []int{ContainerOverhead, ContainerOverhead + 1, len(sealed) - 1} {
		if _, _, err := fc.Decrypt(context.Background(), sealed[:n], []byte("pw123456"), nil); !errors.Is(err, ErrAuthFailed) {
			t.Fatalf("truncated to %d: expected ErrAuthFailed, got %v", n, err)
		}
	}
}

func TestFileCipher_UniqueSaltAndNonce(t *testing.T) {
	fc := New()

	payload := []byte("same input, same password")
	meta := Metadata{Name: "u.txt", Type: "text/plain"}

	first, err := fc.Encrypt(context.Background(), payload, meta, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("first Encrypt failed: %v", err)
	}
	second, err := fc.Encrypt(context.Background(), payload, meta, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("second Encrypt failed: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Fatal("two encryptions of the same input produced identical containers")
	}
	if bytes.Equal(first[:SaltSize], second[:SaltSize]) {
		t.Fatal("salt was reused across encryptions")
	}
	if bytes.Equal(first[SaltSize:ContainerOverhead], second[SaltSize:ContainerOverhead]) {
		t.Fatal("nonce was reused across encryptions")
	}
}

func TestFileCipher_MetadataFidelity(t *testing.T) {
	fc := New()

	sealed, err := fc.Encrypt(context.Background(), []byte("irrelevant content"),
		Metadata{Name: "report.pdf", Type: "application/pdf"}, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, meta, err := fc.Decrypt(context.Background(), sealed, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if meta.Name != "report.pdf" {
		t.Fatalf("name: got %q, want %q", meta.Name, "report.pdf")
	}
	if meta.Type != "application/pdf" {
		t.Fatalf("type: got %q, want %q", meta.Type, "application/pdf")
	}
}

func TestFileCipher_EmptyPassword(t *testing.T) {
	fc := New()

	if _, err := fc.Encrypt(context.Background(), []byte("x"), Metadata{}, nil, nil); !IsValidationError(err) {
		t.Fatalf("Encrypt with empty password: expected validation error, got %v", err)
	}
	if _, _, err := fc.Decrypt(context.Background(), make([]byte, ContainerOverhead), nil, nil); !IsValidationError(err) {
		t.Fatalf("Decrypt with empty password: expected validation error, got %v", err)
	}
}

func TestFileCipher_ContextCancellation(t *testing.T) {
	fc := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fc.Encrypt(ctx, []byte("x"), Metadata{Name: "x"}, []byte("pw123456"), nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("Encrypt: expected context.Canceled, got %v", err)
	}

	sealed, err := fc.Encrypt(context.Background(), []byte("x"), Metadata{Name: "x"}, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if _, _, err := fc.Decrypt(ctx, sealed, []byte("pw123456"), nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("Decrypt: expected context.Canceled, got %v", err)
	}
}

func TestFileCipher_ChaCha20Suite(t *testing.T) {
	fc := New(WithSuite(SuiteChaCha20Poly1305))

	sealed, err := fc.Encrypt(context.Background(), []byte("chacha payload"),
		Metadata{Name: "c.txt", Type: "text/plain"}, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	plain, _, err := fc.Decrypt(context.Background(), sealed, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(plain, []byte("chacha payload")) {
		t.Fatal("payload mismatch")
	}

	// A FileCipher on the default suite must not open it.
	if _, _, err := New().Decrypt(context.Background(), sealed, []byte("pw123456"), nil); !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed across suites, got %v", err)
	}
}

func TestFileCipher_ProgressMilestones(t *testing.T) {
	fc := New()

	var percents []int
	reporter := ProgressFunc(func(p int) { percents = append(percents, p) })

	sealed, err := fc.Encrypt(context.Background(), []byte("progress"),
		Metadata{Name: "p.txt", Type: "text/plain"}, []byte("pw123456"), reporter)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	checkProgress(t, percents)

	percents = nil
	if _, _, err := fc.Decrypt(context.Background(), sealed, []byte("pw123456"), reporter); err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	checkProgress(t, percents)
}

func checkProgress(t *testing.T, percents []int) {
	t.Helper()

	if len(percents) == 0 {
		t.Fatal("no progress reported")
	}
	if percents[0] != 0 {
		t.Fatalf("first report: got %d, want 0", percents[0])
	}
	if percents[len(percents)-1] != 100 {
		t.Fatalf("last report: got %d, want 100", percents[len(percents)-1])
	}
	for i := 1; i < len(percents); i++ {
		if percents[i] < percents[i-1] {
			t.Fatalf("progress went backwards: %v", percents)
		}
	}
}

// sequenceReader yields a fixed byte repeatedly, for deterministic salt and
// nonce generation in tests.
type sequenceReader struct {
	next byte
}

func (r *sequenceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}

func TestFileCipher_DeterministicRandomLayout(t *testing.T) {
	fc := New(WithRandom(&sequenceReader{}))

	sealed, err := fc.Encrypt(context.Background(), []byte("layout"),
		Metadata{Name: "l.txt", Type: "text/plain"}, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Salt is the first 16 bytes of the random stream, nonce the next 12.
	for i := 0; i < ContainerOverhead; i++ {
		if sealed[i] != byte(i) {
			t.Fatalf("header byte %d: got %#x, want %#x", i, sealed[i], byte(i))
		}
	}

	// The container remains decryptable by an independent FileCipher.
	plain, _, err := New().Decrypt(context.Background(), sealed, []byte("pw123456"), nil)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(plain, []byte("layout")) {
		t.Fatal("payload mismatch")
	}
}

func TestFileCipher_ConcurrentCalls(t *testing.T) {
	fc := New()

	done := make(chan error, 4)
	for i := 0; i < 4; i++ {
		payload := bytes.Repeat([]byte{byte(i)}, 64)
		go func() {
			sealed, err := fc.Encrypt(context.Background(), payload,
				Metadata{Name: "c.bin", Type: "application/octet-stream"}, []byte("pw123456"), nil)
			if err != nil {
				done <- err
				return
			}
			plain, _, err := fc.Decrypt(context.Background(), sealed, []byte("pw123456"), nil)
			if err != nil {
				done <- err
				return
			}
			if !bytes.Equal(plain, payload) {
				done <- errors.New("payload mismatch")
				return
			}
			done <- nil
		}()
	}
	for i := 0; i < 4; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent round trip failed: %v", err)
		}
	}
}
