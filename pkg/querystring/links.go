package querystring

// Anchor is a link element whose address can be read and rewritten.
type Anchor interface {
	Href() string
	SetHref(href string)
}

// Links is a collection of anchors, such as every <a> element of a page.
type Links interface {
	Anchors() ([]Anchor, error)
}

// Location is the address of the current page.
type Location interface {
	// Search returns the query component including its leading '?', or "".
	Search() string
	// Hostname returns the host without port.
	Hostname() string
}

// StaticLocation is a Location with fixed values.
type StaticLocation struct {
	Query string
	Host  string
}

func (l StaticLocation) Search() string   { return l.Query }
func (l StaticLocation) Hostname() string { return l.Host }

// AnchorList adapts a slice of anchors to Links.
type AnchorList []Anchor

func (l AnchorList) Anchors() ([]Anchor, error) { return l, nil }
