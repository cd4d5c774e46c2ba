package dom

import (
	"fmt"
	"net/url"
)

// Location is the address of a page.
type Location struct {
	u *url.URL
}

// ParseLocation parses an absolute page URL.
func ParseLocation(rawURL string) (*Location, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, rawURL)
	}
	return &Location{u: u}, nil
}

// Search returns "?" followed by the raw query, or "" when the URL has no query.
func (l *Location) Search() string {
	if l == nil || l.u == nil || l.u.RawQuery == "" {
		return ""
	}
	return "?" + l.u.RawQuery
}

// Hostname returns the host without port.
func (l *Location) Hostname() string {
	if l == nil || l.u == nil {
		return ""
	}
	return l.u.Hostname()
}

// URL returns a copy of the page URL.
func (l *Location) URL() *url.URL {
	if l == nil || l.u == nil {
		return &url.URL{}
	}
	u := *l.u
	return &u
}

func (l *Location) String() string {
	return l.URL().String()
}
