package simplehelpers

import (
	"io"

	"github.com/dmitrymomot/simplehelpers/pkg/cookie"
	"github.com/dmitrymomot/simplehelpers/pkg/dom"
	"github.com/dmitrymomot/simplehelpers/pkg/querystring"
)

// Page is the environment the helpers work against.
type Page interface {
	Location() querystring.Location
	Cookies() cookie.Store
	Links() querystring.Links
}

// EmulatedPage is a Page built from a URL and an optional HTML body, with an in-memory
// cookie jar scoped to the URL.
type EmulatedPage struct {
	location *dom.Location
	document *dom.Document
	jar      *cookie.Jar
}

// NewPage parses rawURL and, when body is not nil, the HTML document served at it.
func NewPage(rawURL string, body io.Reader, opts ...cookie.JarOption) (*EmulatedPage, error) {
	loc, err := dom.ParseLocation(rawURL)
	if err != nil {
		return nil, err
	}

	jar, err := cookie.NewJar(loc.URL(), opts...)
	if err != nil {
		return nil, err
	}

	p := &EmulatedPage{location: loc, jar: jar}
	if body != nil {
		doc, err := dom.Parse(body, loc.URL())
		if err != nil {
			return nil, err
		}
		p.document = doc
	}
	return p, nil
}

func (p *EmulatedPage) Location() querystring.Location { return p.location }

func (p *EmulatedPage) Cookies() cookie.Store { return p.jar }

// Links returns the document's anchors, or no links when the page has no body.
func (p *EmulatedPage) Links() querystring.Links {
	if p.document == nil {
		return querystring.AnchorList{}
	}
	return p.document
}

// Document returns the parsed body, or nil.
func (p *EmulatedPage) Document() *dom.Document { return p.document }

// Jar returns the page's cookie jar.
func (p *EmulatedPage) Jar() *cookie.Jar { return p.jar }
