package otpauth

import (
	"encoding/base32"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Scheme is the URI scheme used by authenticator provisioning URLs.
const Scheme = "otpauth"

// ErrMalformedURI indicates a provisioning URI could not be parsed or
// assembled.
var ErrMalformedURI = errors.New("otpauth: malformed uri")

// URL represents the contents of an otpauth:// provisioning URL, as consumed
// by authenticator apps:
//
//	otpauth://TYPE/LABEL?PARAMETERS
//
// The label is either an account name or "issuer:account". The URL carries
// the shared secret, so it must be handled as a credential.
type URL struct {
	Type      string // "hotp" or "totp"
	Issuer    string // issuer name, e.g. "MyApp"
	Account   string // account identifier, e.g. "user@example.com"
	RawSecret string // base32-encoded shared secret
	Algorithm string // "SHA1", "SHA256", or "SHA512"
	Digits    int    // code length in digits
	Period    int    // time step in seconds (TOTP)
	Counter   uint64 // counter value (HOTP)
}

// ParseURL parses a provisioning URL. The otpauth:// scheme prefix may be
// omitted; any other scheme is an error. All failures wrap ErrMalformedURI.
//
// Query parameters other than secret, issuer, algorithm, digits, period, and
// counter are ignored. The algorithm name is normalized to upper case.
func ParseURL(s string) (*URL, error) {
	rest := s
	switch {
	case strings.HasPrefix(s, Scheme+"://"):
		rest = s[len(Scheme)+3:]
	case strings.HasPrefix(s, "//"):
		rest = s[2:]
	case strings.Contains(s, "://"):
		return nil, fmt.Errorf("%w: invalid scheme", ErrMalformedURI)
	}

	var query string
	if i := strings.Index(rest, "?"); i >= 0 {
		rest, query = rest[:i], rest[i+1:]
	}

	typ, rawLabel, ok := strings.Cut(rest, "/")
	if !ok || typ == "" || rawLabel == "" {
		return nil, fmt.Errorf("%w: invalid type/label", ErrMalformedURI)
	}
	label, err := url.PathUnescape(rawLabel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedURI, err)
	}

	u := &URL{Type: typ}
	labelHasIssuer := false
	if issuer, account, ok := strings.Cut(label, ":"); ok {
		labelHasIssuer = true
		if issuer == "" {
			return nil, fmt.Errorf("%w: empty issuer", ErrMalformedURI)
		}
		if account == "" {
			return nil, fmt.Errorf("%w: empty account name", ErrMalformedURI)
		}
		u.Issuer, u.Account = issuer, account
	} else {
		u.Account = label
	}

	params, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}
	for key, value := range params {
		switch key {
		case "secret":
			u.RawSecret = value
		case "issuer":
			if u.Issuer == "" {
				u.Issuer = value
			}
		case "algorithm":
			u.Algorithm = strings.ToUpper(value)
		case "digits":
			u.Digits, err = parseInt(key, value)
		case "period":
			u.Period, err = parseInt(key, value)
		case "counter":
			u.Counter, err = parseUint(key, value)
		}
		if err != nil {
			return nil, err
		}
	}
	// A label with no account part is an issuer when the issuer parameter
	// names the same value.
	if !labelHasIssuer && u.Issuer != "" && u.Account == u.Issuer {
		u.Account = ""
	}
	return u, nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid integer value for %s", ErrMalformedURI, key)
	}
	return n, nil
}

func parseUint(key, value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid integer value for %s", ErrMalformedURI, key)
	}
	return n, nil
}

// String encodes the URL in standard otpauth:// form. Query parameters are
// emitted in lexicographic order, so the encoding is deterministic. Fields
// with zero values are omitted, except that an HOTP URL always carries its
// counter.
func (u *URL) String() string {
	var sb strings.Builder
	sb.WriteString(Scheme)
	sb.WriteString("://")
	sb.WriteString(u.Type)
	sb.WriteString("/")

	label := u.Account
	if u.Issuer != "" {
		label = u.Issuer
		if u.Account != "" {
			label = u.Issuer + ":" + u.Account
		}
	}
	sb.WriteString(url.PathEscape(label))

	params := make(map[string]string)
	if u.RawSecret != "" {
		params["secret"] = u.RawSecret
	}
	if u.Issuer != "" {
		params["issuer"] = u.Issuer
	}
	if u.Algorithm != "" {
		params["algorithm"] = strings.ToUpper(u.Algorithm)
	}
	if u.Digits > 0 {
		params["digits"] = strconv.Itoa(u.Digits)
	}
	if u.Period > 0 {
		params["period"] = strconv.Itoa(u.Period)
	}
	if u.Counter > 0 || u.Type == "hotp" {
		params["counter"] = strconv.FormatUint(u.Counter, 10)
	}
	if len(params) > 0 {
		sb.WriteString("?")
		sb.WriteString(BuildQuery(params))
	}
	return sb.String()
}

// Secret decodes the base32-encoded shared secret. The decoder is lenient
// about letter case, whitespace, and missing padding, since provisioning
// tools differ on all three.
func (u *URL) Secret() ([]byte, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(u.RawSecret), ""))
	clean = strings.TrimRight(clean, "=")
	dec, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid secret: %v", ErrMalformedURI, err)
	}
	return dec, nil
}

// SetSecret stores key in canonical form: unpadded upper-case base32.
func (u *URL) SetSecret(key []byte) {
	u.RawSecret = base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(key)
}

// MarshalText encodes the URL in the same form as String.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText decodes a URL from its text encoding.
func (u *URL) UnmarshalText(text []byte) error {
	p, err := ParseURL(string(text))
	if err != nil {
		return err
	}
	*u = *p
	return nil
}

// BuildQuery encodes params as a query string with keys in lexicographic
// order and keys and values percent-encoded.
func BuildQuery(params map[string]string) string {
	v := url.Values{}
	for key, value := range params {
		v.Set(key, value)
	}
	return v.Encode()
}

// ParseQuery decodes a query string into a map. Each segment must contain
// '='; the segment is split on the first occurrence, and both halves are
// percent-decoded. When a key appears more than once the last occurrence
// wins.
func ParseQuery(query string) (map[string]string, error) {
	params := make(map[string]string)
	if query == "" {
		return params, nil
	}
	for _, segment := range strings.Split(query, "&") {
		rawKey, rawValue, ok := strings.Cut(segment, "=")
		if !ok {
			return nil, fmt.Errorf("%w: query segment %q missing '='", ErrMalformedURI, segment)
		}
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedURI, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedURI, err)
		}
		params[key] = value
	}
	return params, nil
}
