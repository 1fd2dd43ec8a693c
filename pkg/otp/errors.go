package otp

import "errors"

// Common errors returned by the generator constructors and methods.
var (
	// ErrInvalidConfig indicates the generator configuration is invalid.
	ErrInvalidConfig = errors.New("otp: invalid configuration")
	// ErrGenerationFailed indicates the underlying HMAC computation failed.
	ErrGenerationFailed = errors.New("otp: code generation failed")
)
