package otp

import (
	"bytes"
	"errors"
	"testing"
)

// TestGenerateSecret tests random secret generation
func TestGenerateSecret(t *testing.T) {
	a, err := GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret failed: %v", err)
	}
	if len(a) != 20 {
		t.Errorf("expected 20 byte secret, got %d", len(a))
	}

	b, err := GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("two generated secrets are identical")
	}
}

// TestEncodeSecret tests canonical base32 encoding
func TestEncodeSecret(t *testing.T) {
	got := EncodeSecret([]byte(rfc4226Secret))
	const want = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
	if got != want {
		t.Errorf("EncodeSecret: got %q, want %q", got, want)
	}
}

// TestParseSecret tests lenient decoding of setup-tool key formats
func TestParseSecret(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical", "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", rfc4226Secret},
		{"lower case", "gezdgnbvgy3tqojqgezdgnbvgy3tqojq", rfc4226Secret},
		{"grouped with spaces", "GEZD GNBV GY3T QOJQ GEZD GNBV GY3T QOJQ", rfc4226Secret},
		{"padded", "JBSWY3DPEHPK3PXP", "Hello!\xde\xad\xbe\xef"},
		{"short with padding", "MZXW6===", "foo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSecret(tt.input)
			if err != nil {
				t.Fatalf("ParseSecret(%q) failed: %v", tt.input, err)
			}
			if string(got) != tt.want {
				t.Errorf("ParseSecret(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseSecretInvalid tests rejection of non-base32 input
func TestParseSecretInvalid(t *testing.T) {
	_, err := ParseSecret("not!base32")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

// TestSecretRoundTrip tests that encoding then parsing is the identity
func TestSecretRoundTrip(t *testing.T) {
	secret, err := GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret failed: %v", err)
	}
	parsed, err := ParseSecret(EncodeSecret(secret))
	if err != nil {
		t.Fatalf("ParseSecret failed: %v", err)
	}
	if !bytes.Equal(parsed, secret) {
		t.Errorf("round trip mismatch: got %x, want %x", parsed, secret)
	}
}
