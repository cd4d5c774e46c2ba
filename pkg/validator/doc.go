// Package validator implements the presence check every helper runs on its arguments
// before doing any work.
//
// IsPresent is the pure predicate. Checker wraps it with logging: a failed Check writes
// "Parameter '<label>' is not valid." to the configured slog logger and returns false,
// leaving the caller to fall back to its safe default (empty string, empty slice, zero).
//
//	check := validator.NewChecker(log)
//	if !check.Check(name, "name") {
//	    return ""
//	}
//
// The rule engine (Rule, Apply, ValidationErrors) lets several presence checks be
// evaluated together; Present builds the rule and ValidationErrors unwraps to
// ErrInvalidParameter so callers can match it with errors.Is.
package validator
