package cookie

import (
	"github.com/dmitrymomot/simplehelpers/pkg/validator"
)

// Config holds the default cookie attributes.
type Config struct {
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Days     int    `env:"COOKIE_DAYS" envDefault:"0"`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:""`
}

// DefaultConfig returns session cookies on the page host without secure or samesite.
func DefaultConfig() Config {
	return Config{}
}

// NewFromConfig creates a Manager whose defaults come from cfg. Only non-zero values
// are applied; opts are applied after them.
func NewFromConfig(store Store, check *validator.Checker, cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 4+len(opts))

	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Days != 0 {
		configOpts = append(configOpts, WithDays(cfg.Days))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(cfg.Secure))
	}
	if cfg.SameSite != "" {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	configOpts = append(configOpts, opts...)

	return New(store, check, configOpts...)
}
