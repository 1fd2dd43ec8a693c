package otp

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/jeremyhahn/go-otp/pkg/otpauth"
)

// TOTP generates time-based one-time passwords (RFC 6238). The counter is
// derived from the configured time source as the number of whole periods
// elapsed since the Unix epoch. It is immutable after construction and safe
// for concurrent use.
type TOTP struct {
	cfg Config
}

// NewTOTP creates a TOTP generator. The configuration is validated and an
// error is returned if invalid.
func NewTOTP(cfg Config) (*TOTP, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &TOTP{cfg: cfg.withDefaults()}, nil
}

// NewTOTPFromURL reconstructs a TOTP generator from a provisioning URL.
// The secret parameter is required; digits, algorithm, and period are
// optional overrides.
func NewTOTPFromURL(u *otpauth.URL) (*TOTP, error) {
	if u.Type != TypeTOTP {
		return nil, fmt.Errorf("%w: type must be %q, got %q", ErrInvalidConfig, TypeTOTP, u.Type)
	}
	cfg, err := configFromURL(u)
	if err != nil {
		return nil, err
	}
	if u.Period < 0 {
		return nil, fmt.Errorf("%w: period must be positive", ErrInvalidConfig)
	}
	cfg.Period = uint(u.Period)
	return NewTOTP(cfg)
}

// Generate returns the code for the current time step.
func (g *TOTP) Generate() (string, error) {
	return g.GenerateAt(g.cfg.Now())
}

// GenerateAt returns the code for the time step containing at.
func (g *TOTP) GenerateAt(at time.Time) (string, error) {
	return computeCode(g.cfg, g.counterAt(at))
}

// Validate reports whether code is valid for the current time, allowing the
// configured skew.
func (g *TOTP) Validate(code string) bool {
	return g.ValidateAt(code, g.cfg.Now())
}

// ValidateAt reports whether code matches any time step within Skew steps of
// the one containing at. Every candidate is compared in constant time.
// Replay protection is out of scope: a code that validates once will
// validate again within its window.
func (g *TOTP) ValidateAt(code string, at time.Time) bool {
	counter := g.counterAt(at)
	valid := false
	for i := -int64(g.cfg.Skew); i <= int64(g.cfg.Skew); i++ {
		step := int64(counter) + i
		if step < 0 {
			continue
		}
		want, err := computeCode(g.cfg, uint64(step))
		if err != nil {
			return false
		}
		if len(code) == len(want) &&
			subtle.ConstantTimeCompare([]byte(code), []byte(want)) == 1 {
			valid = true
		}
	}
	return valid
}

// URL returns the provisioning URL for user on-boarding.
func (g *TOTP) URL(issuer, account string) *otpauth.URL {
	u := provisioningURL(g.cfg, TypeTOTP, issuer, account)
	u.Period = int(g.cfg.Period)
	return u
}

func (g *TOTP) counterAt(at time.Time) uint64 {
	return uint64(at.Unix()) / uint64(g.cfg.Period)
}

// Algorithm returns the configured HMAC hash algorithm.
func (g *TOTP) Algorithm() Algorithm { return g.cfg.Algorithm }

// Digits returns the configured code length.
func (g *TOTP) Digits() uint { return g.cfg.Digits }

// Period returns the configured time step in seconds.
func (g *TOTP) Period() uint { return g.cfg.Period }
