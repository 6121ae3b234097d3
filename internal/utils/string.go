package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsSeparator checks if a rune separates words in a candidate line
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/' || r == '\t' || r == ':'
}

// IsWordStart reports whether curr begins a word given the rune before it.
// A word starts after a separator or on a lower to upper case transition.
func IsWordStart(prev, curr rune) bool {
	if IsSeparator(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}

// EqualFold performs case-insensitive rune equality check
func EqualFold(a, b rune) bool {
	if a == b {
		return true
	}

	// ASCII fast path
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		return a == b
	}

	return strings.EqualFold(string(a), string(b))
}

// TrimLineEnding strips a trailing LF or CRLF
func TrimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
