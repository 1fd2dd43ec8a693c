package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/jeremyhahn/go-otp/pkg/otpauth"
)

// OTP type identifiers, matching the type segment of the provisioning URL.
const (
	// TypeHOTP identifies counter-based OTP (RFC 4226).
	TypeHOTP = "hotp"
	// TypeTOTP identifies time-based OTP (RFC 6238).
	TypeTOTP = "totp"
)

// Config holds generator configuration. The only required field is Secret;
// all other fields have defaults applied at construction time. A Config is
// validated as a whole by NewHOTP or NewTOTP, so fields may be set in any
// order.
type Config struct {
	// Secret is the raw shared key between server and user (required).
	Secret []byte
	// Algorithm specifies the HMAC hash algorithm.
	// Default: AlgorithmSHA1
	Algorithm Algorithm
	// Digits specifies the number of digits in the generated code (6, 7, or 8).
	// Default: 6
	Digits uint
	// Period specifies the time step in seconds for TOTP.
	// Default: 30
	Period uint
	// Skew specifies the number of time steps checked before and after the
	// current step during TOTP validation (tolerance for clock skew).
	// Default: 1
	Skew uint
	// Now is the time source used by TOTP, substitutable for testing.
	// Default: time.Now
	Now func() time.Time
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	if len(c.Secret) == 0 {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}
	if c.Digits != 0 && (c.Digits < 6 || c.Digits > 8) {
		return fmt.Errorf("%w: digits must be 6, 7, or 8", ErrInvalidConfig)
	}
	if c.Algorithm != "" {
		if _, err := ParseAlgorithm(string(c.Algorithm)); err != nil {
			return err
		}
	}
	return nil
}

// withDefaults returns a copy of the configuration with zero fields replaced
// by their defaults.
func (c Config) withDefaults() Config {
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmSHA1
	}
	if c.Digits == 0 {
		c.Digits = 6
	}
	if c.Period == 0 {
		c.Period = 30
	}
	if c.Skew == 0 {
		c.Skew = 1
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// computeCode derives the one-time code for a counter value per RFC 4226
// §5.3: serialize the counter as 8 big-endian bytes, HMAC it with the shared
// secret, dynamically truncate the digest to a 31-bit integer, and format
// the low decimal digits zero-padded to the configured width.
func computeCode(c Config, counter uint64) (string, error) {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac, err := hmacSum(c.Algorithm, c.Secret, msg[:])
	if err != nil {
		return "", err
	}
	code := truncate(mac) % pow10(c.Digits)
	return formatCode(code, int(c.Digits)), nil
}

// hmacSum computes HMAC(algorithm, key, message) via crypto/hmac.
func hmacSum(alg Algorithm, key, msg []byte) ([]byte, error) {
	newHash, err := alg.constructor()
	if err != nil {
		return nil, err
	}
	mac := hmac.New(newHash, key)
	mac.Write(msg)
	return mac.Sum(nil), nil
}

// truncate extracts a 31-bit integer from the digest: the low 4 bits of the
// final byte select a 4-byte window, whose first byte is masked to clear the
// sign bit.
func truncate(mac []byte) uint64 {
	offset := mac[len(mac)-1] & 0x0f
	return (uint64(mac[offset]&0x7f) << 24) |
		(uint64(mac[offset+1]) << 16) |
		(uint64(mac[offset+2]) << 8) |
		uint64(mac[offset+3])
}

func pow10(n uint) uint64 {
	p := uint64(1)
	for i := uint(0); i < n; i++ {
		p *= 10
	}
	return p
}

const zeroPadding = "00000000"

// formatCode renders code as a decimal string left-padded with '0' to
// exactly width digits. The string form preserves leading zeros, which a
// numeric type would not.
func formatCode(code uint64, width int) string {
	s := strconv.FormatUint(code, 10)
	if len(s) < width {
		s = zeroPadding[:width-len(s)] + s
	}
	return s
}

// provisioningURL assembles the provisioning URL fields shared by both
// variants: secret, algorithm, and digit count, plus the issuer/account
// label.
func provisioningURL(c Config, typ, issuer, account string) *otpauth.URL {
	u := &otpauth.URL{
		Type:      typ,
		Issuer:    issuer,
		Account:   account,
		Algorithm: c.Algorithm.String(),
		Digits:    int(c.Digits),
	}
	u.SetSecret(c.Secret)
	return u
}

// configFromURL reconstructs generator configuration from a parsed
// provisioning URL. The secret parameter is required; digits and algorithm
// are optional overrides validated at construction.
func configFromURL(u *otpauth.URL) (Config, error) {
	if u.RawSecret == "" {
		return Config{}, fmt.Errorf("%w: secret query parameter must be set", ErrInvalidConfig)
	}
	secret, err := u.Secret()
	if err != nil {
		return Config{}, err
	}
	cfg := Config{Secret: secret}
	if u.Digits != 0 {
		cfg.Digits = uint(u.Digits)
	}
	if u.Algorithm != "" {
		alg, err := ParseAlgorithm(u.Algorithm)
		if err != nil {
			return Config{}, err
		}
		cfg.Algorithm = alg
	}
	return cfg, nil
}
