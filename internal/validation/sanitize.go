// Package validation provides input sanitization and format checks for
// values that end up in logs or response bodies.
package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Runes permitted by SanitizeString besides letters, digits, and whitespace.
const allowedPunctuation = ".-_@"

// SanitizeString normalizes input to NFC and strips everything except
// alphanumerics, whitespace, and the characters in allowedPunctuation. Safe
// for logging and display.
func SanitizeString(input string) string {
	normalized := norm.NFC.String(input)

	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) ||
			strings.ContainsRune(allowedPunctuation, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateEmail performs a basic email shape check: an '@', a '.', and more
// than five characters. It is deliberately not RFC-complete.
func ValidateEmail(email string) bool {
	return strings.Contains(email, "@") &&
		strings.Contains(email, ".") &&
		len(email) > 5
}
