package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Parameter records the name of a checked argument under the key "parameter".
func Parameter(name string) slog.Attr {
	return slog.String("parameter", name)
}

// Operation records the operation name under the key "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// CookieName records a cookie name under the key "cookie".
func CookieName(name string) slog.Attr {
	return slog.String("cookie", name)
}

// Href records a link address under the key "href".
func Href(href string) slog.Attr {
	return slog.String("href", href)
}

// Count records a counter under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
