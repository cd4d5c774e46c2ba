// Package sanitizer cleans whitespace out of text.
//
// RemoveExtraWhitespace is the pure transformation: every maximal run of whitespace
// becomes one space and both ends are trimmed, so the result is idempotent. Cleaner adds
// the presence check in front of it: empty text or a single space is logged as an invalid
// parameter and cleaned to "".
//
//	c := sanitizer.NewCleaner(validator.NewChecker(log))
//	c.Clean("  hello \n\t world ") // "hello world"
//
// Apply and Compose chain string transforms into pipelines.
package sanitizer
