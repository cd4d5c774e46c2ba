package simplehelpers

import (
	"log/slog"
	"math/rand/v2"

	"github.com/dmitrymomot/simplehelpers/pkg/cookie"
	"github.com/dmitrymomot/simplehelpers/pkg/random"
)

// Option configures New.
type Option func(*options)

type options struct {
	log        *slog.Logger
	cookieCfg  cookie.Config
	randomOpts []random.Option
}

// WithLogger sets the logger that receives validation diagnostics and operation logs.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithCookieConfig sets the default attributes applied to cookies written by Set.
func WithCookieConfig(cfg cookie.Config) Option {
	return func(o *options) {
		o.cookieCfg = cfg
	}
}

// WithRandomSource makes the random helper draw from src.
func WithRandomSource(src rand.Source) Option {
	return func(o *options) {
		o.randomOpts = append(o.randomOpts, random.WithSource(src))
	}
}

// WithRandomDefaultMax sets the bound used by Random.Default.
func WithRandomDefaultMax(max int) Option {
	return func(o *options) {
		o.randomOpts = append(o.randomOpts, random.WithDefaultMax(max))
	}
}
