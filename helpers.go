package simplehelpers

import (
	"log/slog"

	"github.com/dmitrymomot/simplehelpers/pkg/cookie"
	"github.com/dmitrymomot/simplehelpers/pkg/logger"
	"github.com/dmitrymomot/simplehelpers/pkg/pairs"
	"github.com/dmitrymomot/simplehelpers/pkg/querystring"
	"github.com/dmitrymomot/simplehelpers/pkg/random"
	"github.com/dmitrymomot/simplehelpers/pkg/sanitizer"
	"github.com/dmitrymomot/simplehelpers/pkg/validator"
)

// Helpers is the single namespace exposing every helper for one page.
type Helpers struct {
	Validator   *validator.Checker
	Text        *sanitizer.Cleaner
	Pairs       *pairs.Extractor
	Cookies     *cookie.Manager
	QueryString *querystring.Service
	Random      *random.Generator

	page Page
	log  *slog.Logger
}

// New wires the helpers to page. All helpers share one validator, so every invalid
// parameter is reported through the same logger.
func New(page Page, opts ...Option) *Helpers {
	o := &options{log: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	check := validator.NewChecker(o.log)
	text := sanitizer.NewCleaner(check)
	extractor := pairs.NewExtractor(check, text)

	var (
		loc   querystring.Location = querystring.StaticLocation{}
		store cookie.Store         = noStore{}
	)
	if page != nil {
		if l := page.Location(); l != nil {
			loc = l
		}
		if s := page.Cookies(); s != nil {
			store = s
		}
	}

	h := &Helpers{
		Validator:   check,
		Text:        text,
		Pairs:       extractor,
		Cookies:     cookie.NewFromConfig(store, check, o.cookieCfg),
		QueryString: querystring.New(loc, check, extractor),
		Random:      random.New(check, o.randomOpts...),
		page:        page,
		log:         o.log.With(logger.Component("helpers")),
	}

	h.log.Debug("helpers initialised", slog.String("host", loc.Hostname()))

	return h
}

// AppendQueryString appends qs to the page's links. See
// querystring.Service.AppendTo for the scope rules.
func (h *Helpers) AppendQueryString(qs string, opts ...querystring.AppendOption) (string, error) {
	var links querystring.Links
	if h.page != nil {
		links = h.page.Links()
	}
	return h.QueryString.AppendTo(links, qs, opts...)
}

// Logger returns the logger shared by the helpers.
func (h *Helpers) Logger() *slog.Logger {
	return h.log
}

// noStore is the cookie store of a page without cookie support: it reads as empty and
// ignores writes, so the cookie helpers report cookies as disabled.
type noStore struct{}

func (noStore) Cookie() string   { return "" }
func (noStore) SetCookie(string) {}
