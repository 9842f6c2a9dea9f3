package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// CollapseWhitespace trims the string and replaces every run of interior
// whitespace with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripControl removes control characters, keeping printable runes and
// ordinary spaces. Pasted form input occasionally carries stray control
// characters that defeat exact comparisons.
func StripControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
