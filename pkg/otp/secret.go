package otp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// secretSize is the default secret length: 160 bits, the RFC 4226
// recommended minimum.
const secretSize = 20

// GenerateSecret generates a cryptographically random shared secret suitable
// for the Config.Secret field.
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, secretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("otp: failed to generate random secret: %w", err)
	}
	return secret, nil
}

// EncodeSecret encodes a secret in the canonical form carried by
// provisioning URLs: unpadded upper-case base32.
func EncodeSecret(secret []byte) string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret)
}

// ParseSecret decodes a base32 secret as handed out by two-factor setup
// tools. Letter case, whitespace, and padding are normalized before
// decoding.
func ParseSecret(s string) ([]byte, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	clean = strings.TrimRight(clean, "=")
	dec, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: secret must be valid base32: %v", ErrInvalidConfig, err)
	}
	return dec, nil
}
