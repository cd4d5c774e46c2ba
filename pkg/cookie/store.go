package cookie

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/dmitrymomot/simplehelpers/pkg/logger"
)

// Store is the page's cookie interface: one string property that reads as the header of
// every cookie visible to the page and writes one cookie, with attributes, at a time.
type Store interface {
	// Cookie returns "name=value; name2=value2" for the cookies visible to the page.
	Cookie() string
	// SetCookie stores one cookie described as "name=value;attr=...;flag".
	SetCookie(raw string)
}

// Jar is a Store that behaves like a browser's cookie jar for a single page: writes are
// scoped to the page URL, domain attributes must match the page host (checked against
// the public suffix list), secure cookies are only visible on https pages and cookies
// with a past expiry are removed.
type Jar struct {
	mu       sync.Mutex
	page     *url.URL
	jar      *cookiejar.Jar
	disabled bool
	log      *slog.Logger
}

// JarOption configures a Jar.
type JarOption func(*Jar)

// WithDisabled makes the jar drop every write, as when the user blocks cookies.
func WithDisabled() JarOption {
	return func(j *Jar) {
		j.disabled = true
	}
}

// WithLogger sets the logger used for debug output about dropped writes.
func WithLogger(log *slog.Logger) JarOption {
	return func(j *Jar) {
		if log != nil {
			j.log = log
		}
	}
}

// NewJar creates an empty jar for the page at page. Only http and https pages carry
// cookies.
func NewJar(page *url.URL, opts ...JarOption) (*Jar, error) {
	if page == nil || (page.Scheme != "http" && page.Scheme != "https") {
		return nil, ErrUnsupportedPage
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	u := *page
	j := &Jar{page: &u, jar: jar, log: slog.Default()}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

// Cookie returns the visible cookies in the order the jar reports them.
func (j *Jar) Cookie() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	cookies := j.jar.Cookies(j.page)
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}

// SetCookie parses raw and stores the cookie. Unparseable input is ignored.
func (j *Jar) SetCookie(raw string) {
	if j.disabled {
		j.log.Debug("cookie write blocked", logger.Component("cookie"))
		return
	}

	c, ok := parseCookieString(raw)
	if !ok {
		j.log.Debug("cookie write ignored", logger.Component("cookie"), slog.String("raw", raw))
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.jar.SetCookies(j.page, []*http.Cookie{c})
}

// parseCookieString reads a document-style cookie assignment. The value is kept verbatim
// (no quoting rules) and unknown attributes are ignored.
func parseCookieString(raw string) (*http.Cookie, bool) {
	parts := strings.Split(raw, ";")

	name, value, found := strings.Cut(parts[0], "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return nil, false
	}

	c := &http.Cookie{Name: name, Value: strings.TrimSpace(value)}

	for _, attr := range parts[1:] {
		key, val, _ := strings.Cut(attr, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)

		switch key {
		case "domain":
			c.Domain = val
		case "path":
			c.Path = val
		case "expires":
			if t, err := parseExpires(val); err == nil {
				c.Expires = t
			}
		case "max-age":
			if n, err := strconv.Atoi(val); err == nil {
				if n <= 0 {
					c.MaxAge = -1
				} else {
					c.MaxAge = n
				}
			}
		case "secure":
			c.Secure = true
		case "httponly":
			c.HttpOnly = true
		case "samesite":
			c.SameSite = parseSameSite(val)
		}
	}

	return c, true
}

func parseExpires(s string) (time.Time, error) {
	t, err := http.ParseTime(s)
	if err == nil {
		return t, nil
	}
	// Dashed RFC 850 variant used by older scripts: "Thu, 01-Jan-1970 00:00:01 GMT".
	return time.Parse("Mon, 02-Jan-2006 15:04:05 MST", s)
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	}
	return http.SameSiteDefaultMode
}
