package otp

import (
	"crypto/subtle"
	"fmt"

	"github.com/jeremyhahn/go-otp/pkg/otpauth"
)

// HOTP generates counter-based one-time passwords (RFC 4226).
// It is immutable after construction and safe for concurrent use. The
// counter is supplied per call rather than stored, so counter persistence
// belongs to the caller.
type HOTP struct {
	cfg Config
}

// NewHOTP creates an HOTP generator. The configuration is validated and an
// error is returned if invalid. Period, Skew, and Now are not used by HOTP.
func NewHOTP(cfg Config) (*HOTP, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &HOTP{cfg: cfg.withDefaults()}, nil
}

// NewHOTPFromURL reconstructs an HOTP generator from a provisioning URL.
// The secret parameter is required; digits and algorithm are optional
// overrides. A counter parameter on the URL is not consumed: the counter is
// always supplied per call to Generate.
func NewHOTPFromURL(u *otpauth.URL) (*HOTP, error) {
	if u.Type != TypeHOTP {
		return nil, fmt.Errorf("%w: type must be %q, got %q", ErrInvalidConfig, TypeHOTP, u.Type)
	}
	cfg, err := configFromURL(u)
	if err != nil {
		return nil, err
	}
	return NewHOTP(cfg)
}

// Generate returns the code for the specified counter value.
func (g *HOTP) Generate(counter uint64) (string, error) {
	return computeCode(g.cfg, counter)
}

// Validate reports whether code is the code for the specified counter value.
// The comparison is constant-time.
func (g *HOTP) Validate(code string, counter uint64) bool {
	want, err := g.Generate(counter)
	if err != nil {
		return false
	}
	return len(code) == len(want) &&
		subtle.ConstantTimeCompare([]byte(code), []byte(want)) == 1
}

// URL returns the provisioning URL for user on-boarding. The label is the
// issuer alone when account is empty, "issuer:account" otherwise.
func (g *HOTP) URL(counter uint64, issuer, account string) *otpauth.URL {
	u := provisioningURL(g.cfg, TypeHOTP, issuer, account)
	u.Counter = counter
	return u
}

// Algorithm returns the configured HMAC hash algorithm.
func (g *HOTP) Algorithm() Algorithm { return g.cfg.Algorithm }

// Digits returns the configured code length.
func (g *HOTP) Digits() uint { return g.cfg.Digits }
