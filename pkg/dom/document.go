package dom

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrymomot/simplehelpers/pkg/querystring"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
	base *url.URL
}

// Parse reads an HTML document. Relative link addresses are resolved against base,
// which may be nil.
func Parse(r io.Reader, base *url.URL) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return &Document{root: root, base: base}, nil
}

// ParseString is Parse over a string.
func ParseString(s string, base *url.URL) (*Document, error) {
	return Parse(strings.NewReader(s), base)
}

// Anchors returns every <a> element in document order.
func (d *Document) Anchors() ([]querystring.Anchor, error) {
	var out []querystring.Anchor
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			out = append(out, &Anchor{node: n, base: d.base})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out, nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return nil
}

// String renders the document, returning "" if rendering fails.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// Anchor is an <a> element.
type Anchor struct {
	node *html.Node
	base *url.URL
}

// Href returns the element's address resolved against the document base, the way a
// browser exposes it. Missing or empty attributes yield "". Fragment-only references
// ("#top") and addresses that fail to parse are returned as written.
func (a *Anchor) Href() string {
	raw, ok := a.attr("href")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "#") || a.base == nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return a.base.ResolveReference(ref).String()
}

// RawHref returns the href attribute exactly as written.
func (a *Anchor) RawHref() string {
	raw, _ := a.attr("href")
	return raw
}

// SetHref replaces the href attribute, adding it when missing.
func (a *Anchor) SetHref(href string) {
	for i := range a.node.Attr {
		if a.node.Attr[i].Namespace == "" && a.node.Attr[i].Key == "href" {
			a.node.Attr[i].Val = href
			return
		}
	}
	a.node.Attr = append(a.node.Attr, html.Attribute{Key: "href", Val: href})
}

func (a *Anchor) attr(key string) (string, bool) {
	for _, at := range a.node.Attr {
		if at.Namespace == "" && at.Key == key {
			return at.Val, true
		}
	}
	return "", false
}
