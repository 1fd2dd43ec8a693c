// Package otp generates TOTP (RFC 6238) and HOTP (RFC 4226) one-time
// password codes and the otpauth:// provisioning URLs that carry generator
// configuration to authenticator apps.
//
// TOTP (Time-based One-Time Password) generates codes that change every 30
// seconds, commonly used with authenticator apps like Google Authenticator,
// Authy, etc.
//
// HOTP (HMAC-based One-Time Password) generates codes from a counter value,
// used in hardware tokens and some mobile apps.
//
// # TOTP Example
//
// Time-based OTP for use with authenticator apps:
//
//	secret, err := otp.GenerateSecret()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen, err := otp.NewTOTP(otp.Config{
//	    Secret:    secret,
//	    Digits:    6,
//	    Period:    30,
//	    Algorithm: otp.AlgorithmSHA1,
//	    Skew:      1, // Allow 1 period of clock skew
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Generate the current code
//	code, err := gen.Generate()
//
//	// Validate a code from the user's authenticator app
//	if !gen.Validate(code) {
//	    log.Println("authentication failed")
//	}
//
//	// Provisioning URL for QR code generation
//	uri := gen.URL("MyApp", "user@example.com").String()
//
// # HOTP Example
//
// Counter-based OTP for hardware tokens. The generator holds no counter
// state; supply the counter with each call and persist it yourself:
//
//	gen, err := otp.NewHOTP(otp.Config{Secret: secret})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := gen.Generate(counter)
//	if gen.Validate(code, counter) {
//	    counter++ // store for the next validation
//	}
//
// # Importing a Provisioning URL
//
// A generator can be reconstructed from a scanned otpauth:// URL:
//
//	u, err := otpauth.ParseURL(uri)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gen, err := otp.NewTOTPFromURL(u)
//
// # Hash Algorithms
//
// The package supports multiple hash algorithms:
//   - AlgorithmSHA1 (default, widely supported)
//   - AlgorithmSHA256
//   - AlgorithmSHA512
//
// Note that not all authenticator apps support SHA256 and SHA512.
//
// # Thread Safety
//
// Generators are immutable after construction and safe for concurrent use.
// Multiple goroutines can call their methods simultaneously.
package otp
