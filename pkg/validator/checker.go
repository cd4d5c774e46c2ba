package validator

import (
	"log/slog"

	"github.com/dmitrymomot/simplehelpers/pkg/logger"
)

// Checker runs presence checks and logs a diagnostic for every failure.
// It never panics and never aborts the caller: the boolean result is the only signal,
// so callers short-circuit themselves.
type Checker struct {
	log *slog.Logger
}

// NewChecker creates a Checker logging to log, or to slog.Default when log is nil.
func NewChecker(log *slog.Logger) *Checker {
	return &Checker{log: log}
}

// Check reports whether value is present. On failure it logs
// "Parameter '<label>' is not valid." at warn level.
func (c *Checker) Check(value any, label string) bool {
	if IsPresent(value) {
		return true
	}
	c.logger().Warn(InvalidMessage(label), logger.Component("validator"), logger.Parameter(label))
	return false
}

// Validate applies rules, logs each failing rule and returns the aggregated error.
func (c *Checker) Validate(rules ...Rule) error {
	err := Apply(rules...)
	for _, ve := range ExtractValidationErrors(err) {
		c.logger().Warn(ve.Message, logger.Component("validator"), logger.Parameter(ve.Field))
	}
	return err
}

// Logger returns the logger the checker reports to.
func (c *Checker) Logger() *slog.Logger {
	return c.logger()
}

func (c *Checker) logger() *slog.Logger {
	if c == nil || c.log == nil {
		return slog.Default()
	}
	return c.log
}
