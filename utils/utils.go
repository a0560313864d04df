package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/google/go-querystring/query"
)

func If[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	}
	return falseValue
}

func StringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// Hash returns the url-safe base64 sha256 of s, truncated to l characters.
func Hash(s string, l int) string {
	hasher := sha256.New()
	hasher.Write([]byte(s))
	sha := base64.URLEncoding.EncodeToString(hasher.Sum(nil))

	if l <= 0 || l >= len(sha) {
		return sha
	}

	return sha[:l]
}

// EncodeURLParams encodes q as a query string including the leading "?".
// An encoding failure yields an empty string.
func EncodeURLParams(q any) string {
	v, err := query.Values(q)
	if err != nil {
		return ""
	}
	return "?" + v.Encode()
}

// Extension returns the extension of path without its leading dot, case preserved.
// Leading dots of the file name do not start an extension, so ".png" has none.
func Extension(path string) string {
	name := strings.TrimLeft(filepath.Base(path), ".")
	return strings.TrimPrefix(filepath.Ext(name), ".")
}
