package cookie

// Options are the attributes Set writes next to name=value. The path is always "/".
type Options struct {
	Domain   string
	Days     int
	Secure   bool
	SameSite string
}

type Option func(*Options)

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithDays sets the lifetime in days. Zero means a session cookie.
func WithDays(days int) Option {
	return func(o *Options) {
		o.Days = days
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// WithSameSite sets the samesite attribute value ("Lax", "Strict", "None").
// An empty value omits the attribute.
func WithSameSite(sameSite string) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// applyOptions copies base and applies opts to the copy.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		if opt != nil {
			opt(&result)
		}
	}
	return result
}
