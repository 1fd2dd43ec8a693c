// Package otpauth encodes and decodes the otpauth:// provisioning URL format
// used by authenticator apps such as Google Authenticator and Authy to import
// one-time password generator configuration, typically via a QR code.
//
// The format is:
//
//	otpauth://TYPE/LABEL?PARAMETERS
//
// where TYPE is "hotp" or "totp", LABEL is an account name optionally
// prefixed with an issuer ("Issuer:account"), and PARAMETERS carry the
// shared secret, hash algorithm, digit count, and the counter (HOTP) or
// period (TOTP).
//
// # Parsing
//
//	u, err := otpauth.ParseURL("otpauth://totp/MyApp:user@example.com?secret=JBSWY3DPEHPK3PXP")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	key, err := u.Secret() // decoded secret bytes
//
// # Building
//
//	u := &otpauth.URL{
//	    Type:    "totp",
//	    Issuer:  "MyApp",
//	    Account: "user@example.com",
//	    Digits:  6,
//	    Period:  30,
//	}
//	u.SetSecret(key)
//	uri := u.String() // render as QR code for the user to scan
//
// # Security
//
// The URL carries the shared secret in its query string. Treat the encoded
// form as a credential: do not log it and do not transmit it over untrusted
// channels.
package otpauth
