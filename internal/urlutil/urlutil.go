package urlutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidURL indicates a string that cannot be parsed as an absolute URL.
var ErrInvalidURL = errors.New("invalid URL")

// Normalize canonicalizes a URL string so trivially different spellings of
// the same resource map to one form: scheme and host are lowercased, default
// ports are stripped, a trailing slash on the path is removed, and the
// fragment is dropped.
func Normalize(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidURL
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	// Strip default ports
	switch {
	case u.Scheme == "http" && strings.HasSuffix(u.Host, ":80"):
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(u.Host, ":443"):
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	// Trailing slash carries no identity
	u.Path = strings.TrimSuffix(u.Path, "/")

	u.Fragment = ""

	return u.String(), nil
}

// Hash returns the dedup key for a URL: the hex-encoded SHA-256 digest of
// its normalized form. URLs that normalize identically hash identically.
func Hash(raw string) (string, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:]), nil
}

// IsValid reports whether raw parses as an absolute URL.
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}
