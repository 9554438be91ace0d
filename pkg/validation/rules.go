package validation

import (
	"strings"

	"github.com/goliatone/go-formguard/pkg/model"
)

const (
	minNameLength     = 2
	minPasswordLength = 8
	minPhoneDigits    = 7
	maxPhoneDigits    = 15
)

// IsFullName reports whether the trimmed name is at least two UTF-16 code
// units long.
func IsFullName(value string) bool {
	return textLength(value) >= minNameLength
}

// IsLooseEmail accepts local@domain.tld shapes: no white space anywhere, a
// single @ with a non-empty local part, and a domain holding a dot with at
// least one character on each side.
func IsLooseEmail(value string) bool {
	if strings.IndexFunc(value, model.IsSpace) >= 0 {
		return false
	}
	local, domain, ok := strings.Cut(value, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	for i := 1; i < len(domain)-1; i++ {
		if domain[i] == '.' {
			return true
		}
	}
	return false
}

// IsStrongPassword requires eight or more characters on a single line that mix
// lower case, upper case, digits and at least one symbol. Underscore and
// non-ASCII characters count as symbols.
func IsStrongPassword(value string) bool {
	if textLength(value) < minPasswordLength {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range value {
		switch {
		case isLineTerminator(r):
			return false
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// IsPhone accepts an optional leading + followed by 7 to 15 ASCII digits.
// Emptiness is handled by the caller since the phone field is optional.
func IsPhone(value string) bool {
	digits := strings.TrimPrefix(value, "+")
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// textLength counts UTF-16 code units, the length a browser reports for an
// input value. Characters outside the Basic Multilingual Plane count twice.
func textLength(value string) int {
	n := 0
	for _, r := range value {
		if r > 0xFFFF {
			n += 2
			continue
		}
		n++
	}
	return n
}

func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
