package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Algorithm identifies the hash function used for HMAC computation.
type Algorithm string

const (
	// AlgorithmSHA1 uses SHA1 (RFC default, widest authenticator support).
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses SHA256.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses SHA512.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// ParseAlgorithm maps a symbolic name to an Algorithm. The match is
// case-sensitive; anything other than "SHA1", "SHA256", or "SHA512" fails
// with ErrInvalidConfig.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512:
		return a, nil
	}
	return "", fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512", ErrInvalidConfig)
}

// String returns the symbolic name, the inverse of ParseAlgorithm.
func (a Algorithm) String() string { return string(a) }

// Size returns the digest length in bytes, or 0 for an unknown algorithm.
func (a Algorithm) Size() int {
	switch a {
	case AlgorithmSHA1:
		return sha1.Size
	case AlgorithmSHA256:
		return sha256.Size
	case AlgorithmSHA512:
		return sha512.Size
	}
	return 0
}

// constructor resolves the hash constructor consumed by crypto/hmac.
func (a Algorithm) constructor() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA1:
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	}
	return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrGenerationFailed, string(a))
}
