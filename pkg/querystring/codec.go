package querystring

import (
	"net/url"
	"strings"
)

// componentReplacer restores the characters url.QueryEscape escapes but a URI component
// encoder leaves alone, and spells spaces as %20.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s for use as a query value. Letters, digits and
// -_.!~*'() are kept; everything else, including space, is escaped as UTF-8 %XX.
func EncodeURIComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

// DecodeURIComponent reverses EncodeURIComponent. A '+' stays a '+'.
func DecodeURIComponent(s string) (string, error) {
	return url.PathUnescape(s)
}

// DecodeOrRaw is DecodeURIComponent without the error: malformed input is returned as is.
func DecodeOrRaw(s string) string {
	if decoded, err := DecodeURIComponent(s); err == nil {
		return decoded
	}
	return s
}

func stripQuestionMark(qs string) string {
	return strings.TrimPrefix(qs, "?")
}
