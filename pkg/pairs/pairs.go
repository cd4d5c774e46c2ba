package pairs

import (
	"strings"

	"github.com/dmitrymomot/simplehelpers/pkg/sanitizer"
	"github.com/dmitrymomot/simplehelpers/pkg/validator"
)

const (
	// DefaultSeparator splits a key from its value.
	DefaultSeparator = "="
	// DefaultDelimiter splits pairs from each other, as in a cookie header.
	DefaultDelimiter = ";"
)

type options struct {
	separator string
	delimiter string
}

// Option configures a single Extract call.
type Option func(*options)

// WithSeparator sets the key/value separator. Empty values are ignored.
func WithSeparator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// WithDelimiter sets the pair delimiter. Empty values are ignored.
func WithDelimiter(delim string) Option {
	return func(o *options) {
		if delim != "" {
			o.delimiter = delim
		}
	}
}

// Extractor pulls values out of delimited key/value strings.
type Extractor struct {
	check   *validator.Checker
	cleaner *sanitizer.Cleaner
}

// NewExtractor creates an Extractor. Chunks are normalised with cleaner before matching.
func NewExtractor(check *validator.Checker, cleaner *sanitizer.Cleaner) *Extractor {
	if cleaner == nil {
		cleaner = sanitizer.NewCleaner(check)
	}
	return &Extractor{check: check, cleaner: cleaner}
}

// Extract returns the value of every pair in input whose key is key, in source order.
//
// A chunk matches when its cleaned text starts with key+separator; the remainder of the
// chunk is the value. Matching is a literal prefix test, so a key that itself contains
// the separator (e.g. "a=b") also matches the chunk "a=b=c" with value "c".
// Invalid input or key yields an empty, non-nil slice.
func (e *Extractor) Extract(input, key string, opts ...Option) []string {
	result := []string{}

	if !e.check.Check(input, "input") {
		return result
	}
	if !e.check.Check(key, "key") {
		return result
	}

	o := options{separator: DefaultSeparator, delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}

	prefix := key + o.separator
	for _, chunk := range strings.Split(input, o.delimiter) {
		if chunk == "" {
			continue
		}
		pair := e.cleaner.CleanInput(chunk)
		if value, ok := strings.CutPrefix(pair, prefix); ok {
			result = append(result, value)
		}
	}

	return result
}

// First returns the first value Extract finds, or "" when there is none.
func (e *Extractor) First(input, key string, opts ...Option) string {
	if values := e.Extract(input, key, opts...); len(values) > 0 {
		return values[0]
	}
	return ""
}
