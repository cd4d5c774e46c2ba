package querystring

// ScopeExit restricts AppendTo to links leaving the page's domain.
const ScopeExit = "exit"

type appendOptions struct {
	scope     string
	domain    string
	domainSet bool
}

// AppendOption configures AppendTo.
type AppendOption func(*appendOptions)

// WithScope selects which links AppendTo rewrites. ScopeExit (the default) only touches
// links whose address does not contain the domain; any other value touches every link.
func WithScope(scope string) AppendOption {
	return func(o *appendOptions) {
		o.scope = scope
	}
}

// WithDomain overrides the domain used by the exit scope. It defaults to the hostname of
// the service's Location.
func WithDomain(domain string) AppendOption {
	return func(o *appendOptions) {
		o.domain = domain
		o.domainSet = true
	}
}
