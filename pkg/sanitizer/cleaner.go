package sanitizer

import (
	"github.com/dmitrymomot/simplehelpers/pkg/validator"
)

// Cleaner is the checked entry point for whitespace cleaning.
type Cleaner struct {
	check *validator.Checker
	clean func(string) string
}

// NewCleaner creates a Cleaner reporting invalid input through check.
func NewCleaner(check *validator.Checker) *Cleaner {
	return &Cleaner{
		check: check,
		clean: Compose(RemoveExtraWhitespace),
	}
}

// Clean returns text with whitespace runs collapsed and ends trimmed.
// Empty text and a lone space fail the presence check and yield "".
func (c *Cleaner) Clean(text string) string {
	return c.cleanAs(text, "text")
}

// CleanInput is Clean with the diagnostic labelled "input", used when cleaning chunks of
// a larger string.
func (c *Cleaner) CleanInput(chunk string) string {
	return c.cleanAs(chunk, "input")
}

func (c *Cleaner) cleanAs(s, label string) string {
	if !c.check.Check(s, label) {
		return ""
	}
	return c.clean(s)
}
