package simplehelpers

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/simplehelpers/pkg/cookie"
	"github.com/dmitrymomot/simplehelpers/pkg/logger"
)

// Config is the environment configuration of the helpers.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:""`
	LogFormat   string `env:"LOG_FORMAT" envDefault:""`
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"simplehelpers"`

	RandomDefaultMax int `env:"RANDOM_DEFAULT_MAX" envDefault:"10"`

	Cookie cookie.Config
}

// Validate reports configuration values the helpers cannot start with.
func (c Config) Validate() error {
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.RandomDefaultMax < 1 {
		return fmt.Errorf("%w: random default max must be positive, got %d", ErrInvalidConfig, c.RandomDefaultMax)
	}
	if c.Cookie.Days < 0 {
		return fmt.Errorf("%w: cookie days must not be negative, got %d", ErrInvalidConfig, c.Cookie.Days)
	}
	return nil
}

// Logger builds the logger described by the configuration: environment defaults first,
// then explicit level and format.
func (c Config) Logger(opts ...logger.Option) *slog.Logger {
	base := []logger.Option{logger.WithEnvironment(c.Environment, c.ServiceName)}
	if c.LogLevel != "" {
		base = append(base, logger.WithLevelName(c.LogLevel))
	}
	if c.LogFormat != "" {
		base = append(base, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return logger.New(append(base, opts...)...)
}

// NewFromConfig validates cfg and builds Helpers for page with the configured logger,
// cookie defaults and random bound. opts are applied last.
func NewFromConfig(page Page, cfg Config, opts ...Option) (*Helpers, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithLogger(cfg.Logger()),
		WithCookieConfig(cfg.Cookie),
		WithRandomDefaultMax(cfg.RandomDefaultMax),
	}
	return New(page, append(base, opts...)...), nil
}
