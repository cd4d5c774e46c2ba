package sanitizer

import (
	"strings"
	"unicode"
)

// RemoveExtraWhitespace collapses every run of whitespace (spaces, tabs, line breaks and
// other Unicode spaces) into a single space and trims both ends.
func RemoveExtraWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HasWhitespace reports whether s contains any whitespace character.
func HasWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
