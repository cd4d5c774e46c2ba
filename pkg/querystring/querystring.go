package querystring

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/simplehelpers/pkg/logger"
	"github.com/dmitrymomot/simplehelpers/pkg/pairs"
	"github.com/dmitrymomot/simplehelpers/pkg/sanitizer"
	"github.com/dmitrymomot/simplehelpers/pkg/validator"
)

// Service reads and builds query strings. Methods without an explicit query string
// operate on the query of the service's Location.
type Service struct {
	loc       Location
	check     *validator.Checker
	extractor *pairs.Extractor
}

// New creates a Service. A nil loc behaves like a page without query and hostname.
func New(loc Location, check *validator.Checker, extractor *pairs.Extractor) *Service {
	if loc == nil {
		loc = StaticLocation{}
	}
	if extractor == nil {
		extractor = pairs.NewExtractor(check, nil)
	}
	return &Service{loc: loc, check: check, extractor: extractor}
}

// Get returns the raw values of key in the current page query.
func (s *Service) Get(key string) []string {
	return s.GetFrom(s.loc.Search(), key)
}

// GetFrom returns the raw (still percent-encoded) values of key in querystring, in order.
// A leading '?' is ignored. Unknown keys and an empty query string yield an empty slice.
func (s *Service) GetFrom(querystring, key string) []string {
	if !s.check.Check(key, "key") {
		return []string{}
	}

	querystring = stripQuestionMark(querystring)
	if querystring == "" {
		return []string{}
	}

	return s.extractor.Extract(querystring, key,
		pairs.WithSeparator("="),
		pairs.WithDelimiter("&"),
	)
}

// Add appends key=value to the current page query. See AddTo.
func (s *Service) Add(key, value string) string {
	return s.AddTo(s.loc.Search(), key, value)
}

// AddTo returns querystring with key=EncodeURIComponent(value) appended. An empty
// querystring produces "?key=value". Existing pairs with the same key are kept.
//
// A key containing whitespace is reported as invalid but still used.
func (s *Service) AddTo(querystring, key, value string) string {
	if !s.check.Check(key, "key") {
		return ""
	}
	if sanitizer.HasWhitespace(key) {
		// TODO: reject whitespace keys once callers relying on them are migrated.
		s.check.Check("", "key")
	}
	if !s.check.Check(value, "value") {
		return ""
	}

	pair := key + "=" + EncodeURIComponent(value)
	if querystring != "" {
		return querystring + "&" + pair
	}
	return "?" + pair
}

// ToMap converts the current page query to a map. See ToMapFrom.
func (s *Service) ToMap() map[string]string {
	return s.ToMapFrom(s.loc.Search())
}

// ToMapFrom splits querystring into pairs and returns them keyed by the raw key with
// decoded values. Later duplicates overwrite earlier ones, a pair without '=' maps to ""
// and empty segments are skipped.
func (s *Service) ToMapFrom(querystring string) map[string]string {
	result := map[string]string{}

	querystring = stripQuestionMark(querystring)
	if querystring == "" {
		return result
	}

	for _, pair := range strings.Split(querystring, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		result[key] = DecodeOrRaw(value)
	}

	return result
}

// AppendTo appends querystring to the address of every selected link in links and
// returns MsgAppended.
//
// Links without an address or pointing at an in-page fragment are skipped. In the
// exit scope, links whose address contains the domain are skipped as well. The query is
// joined with '?' or '&' depending on whether the address already has a query, and is
// inserted before any fragment. A panic raised by a link implementation is recovered and
// returned as ErrAppendFailed; anchors rewritten before it keep their new address.
func (s *Service) AppendTo(links Links, querystring string, opts ...AppendOption) (msg string, err error) {
	if err := s.check.Validate(validator.Present("querystring", querystring)); err != nil {
		return "", err
	}
	if links == nil {
		return "", ErrNoLinks
	}

	o := appendOptions{scope: ScopeExit}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.domainSet {
		o.domain = s.loc.Hostname()
	}

	log := s.check.Logger().With(logger.Component("querystring"), logger.Operation("appendto"))

	defer func() {
		if r := recover(); r != nil {
			msg = ""
			err = fmt.Errorf("%w: %v", ErrAppendFailed, r)
			log.Error("append aborted", logger.Error(err))
		}
	}()

	querystring = stripQuestionMark(querystring)

	anchors, err := links.Anchors()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAppendFailed, err)
	}

	rewritten := 0
	for _, a := range anchors {
		if a == nil {
			continue
		}
		href := a.Href()
		if href == "" || strings.HasPrefix(href, "#") {
			continue
		}
		if o.scope == ScopeExit && strings.Contains(href, o.domain) {
			continue
		}

		next := appendQuery(href, querystring)
		a.SetHref(next)
		rewritten++
		log.Debug("link rewritten", logger.Href(next))
	}

	log.Info("query appended to links", logger.Count(rewritten), slog.String("scope", o.scope))
	return MsgAppended, nil
}

// appendQuery joins qs onto href before its fragment.
func appendQuery(href, qs string) string {
	base, fragment, hasFragment := strings.Cut(href, "#")

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	if !hasFragment {
		return base + sep + qs
	}
	return base + sep + qs + "#" + fragment
}
