package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/simplehelpers/pkg/sanitizer"
)

func TestRemoveExtraWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses spaces", "hello     world", "hello world"},
		{"collapses mixed whitespace", "hello \t\n world", "hello world"},
		{"trims ends", "\n  hello world \t", "hello world"},
		{"handles unicode spaces", "a  b", "a b"},
		{"whitespace only", " \t\n ", ""},
		{"empty", "", ""},
		{"already clean", "a b c", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.RemoveExtraWhitespace(tt.input))
		})
	}
}

func TestRemoveExtraWhitespace_Idempotent(t *testing.T) {
	inputs := []string{
		"  a  b  ",
		"\tfoo\n\nbar\r\nbaz ",
		"x",
		"   ",
		"one two  three   four",
	}
	for _, in := range inputs {
		once := sanitizer.RemoveExtraWhitespace(in)
		assert.Equal(t, once, sanitizer.RemoveExtraWhitespace(once))
		assert.NotContains(t, once, "  ")
		assert.Equal(t, strings.TrimSpace(once), once)
	}
}

func TestHasWhitespace(t *testing.T) {
	assert.True(t, sanitizer.HasWhitespace("a b"))
	assert.True(t, sanitizer.HasWhitespace("a\tb"))
	assert.False(t, sanitizer.HasWhitespace("ab"))
	assert.False(t, sanitizer.HasWhitespace(""))
}
