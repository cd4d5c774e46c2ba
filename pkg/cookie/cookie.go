package cookie

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/simplehelpers/pkg/logger"
	"github.com/dmitrymomot/simplehelpers/pkg/pairs"
	"github.com/dmitrymomot/simplehelpers/pkg/querystring"
	"github.com/dmitrymomot/simplehelpers/pkg/validator"
)

const (
	probeName = "helperTestCookie"
	epoch     = "Thu, 01 Jan 1970 00:00:01 GMT"
)

// Manager reads and writes first-party cookies through a Store. It keeps no state of its
// own: the store is the only source of truth.
type Manager struct {
	store     Store
	check     *validator.Checker
	extractor *pairs.Extractor
	defaults  Options
	now       func() time.Time
}

// New creates a Manager over store. opts become the defaults of every Set call.
func New(store Store, check *validator.Checker, opts ...Option) *Manager {
	return &Manager{
		store:     store,
		check:     check,
		extractor: pairs.NewExtractor(check, nil),
		defaults:  applyOptions(Options{}, opts),
		now:       time.Now,
	}
}

// Enabled reports whether the store accepts cookies. It writes a probe cookie, checks
// that it reads back and expires it again.
func (m *Manager) Enabled() bool {
	probe := uuid.NewString()
	m.store.SetCookie(probeName + "=" + probe + ";path=/")

	enabled := m.lookup(probeName) == probe
	if enabled {
		m.store.SetCookie(probeName + "=;path=/;expires=" + epoch)
	}
	return enabled
}

// Get returns the percent-decoded value of the first cookie called name, or "".
// Values that are not valid percent-encoding are returned as stored.
func (m *Manager) Get(name string) string {
	value := m.GetRaw(name)
	if value == "" {
		return ""
	}
	return querystring.DecodeOrRaw(value)
}

// GetRaw returns the value of the first cookie called name without decoding it.
func (m *Manager) GetRaw(name string) string {
	if !m.check.Check(name, "name") {
		return ""
	}
	return m.lookup(name)
}

// lookup returns the first value of name in the store's header. An empty jar is not an
// invalid argument, so it is answered without going through the extractor.
func (m *Manager) lookup(name string) string {
	header := m.store.Cookie()
	if header == "" {
		return ""
	}
	return m.extractor.First(header, name)
}

// Set writes the cookie name=value with path=/ plus the domain, expiry, secure and
// samesite attributes from opts over the manager defaults, and returns the written
// cookie string once it reads back.
//
// The value is written as given; encode it with querystring.EncodeURIComponent when it
// may contain ';' or whitespace. Days of zero make a session cookie, negative days
// expire the cookie immediately.
func (m *Manager) Set(name, value string, opts ...Option) (string, error) {
	if err := m.check.Validate(validator.Present("name", name)); err != nil {
		return "", err
	}

	if !m.Enabled() {
		return "", ErrCookiesDisabled
	}

	o := applyOptions(m.defaults, opts)
	cookieString := m.build(name, value, o)
	m.store.SetCookie(cookieString)

	m.log().Debug("cookie written",
		logger.CookieName(name),
		slog.String("domain", o.Domain),
		slog.Int("days", o.Days),
	)

	if m.GetRaw(name) == "" {
		return "", ErrOperationFailed
	}
	return cookieString, nil
}

// Delete expires the cookie called name on the given domain (from opts) and reports
// MsgDeleted once it no longer reads back.
func (m *Manager) Delete(name string, opts ...Option) (string, error) {
	if err := m.check.Validate(validator.Present("name", name)); err != nil {
		return "", err
	}

	o := applyOptions(Options{Domain: m.defaults.Domain}, opts)
	// The outcome is checked below by reading the cookie back.
	_, _ = m.Set(name, "", WithDomain(o.Domain), WithDays(-1), WithSecure(false), WithSameSite(""))

	if m.GetRaw(name) != "" {
		m.log().Debug("cookie still present after delete", logger.CookieName(name))
		return "", ErrNotDeleted
	}
	return MsgDeleted, nil
}

func (m *Manager) build(name, value string, o Options) string {
	parts := make([]string, 0, 6)
	parts = append(parts, name+"="+value)
	if o.Domain != "" {
		parts = append(parts, "domain="+o.Domain)
	}
	parts = append(parts, "path=/")
	if o.Days != 0 {
		expires := m.now().AddDate(0, 0, o.Days).UTC()
		parts = append(parts, "expires="+expires.Format(http.TimeFormat))
	}
	if o.Secure {
		parts = append(parts, "secure")
	}
	if o.SameSite != "" {
		parts = append(parts, "samesite="+o.SameSite)
	}
	return strings.Join(parts, ";")
}

func (m *Manager) log() *slog.Logger {
	return m.check.Logger().With(logger.Component("cookie"))
}
