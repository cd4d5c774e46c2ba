// Package logger builds *slog.Logger instances for the helper services and the CLI.
//
// New assembles a text or JSON slog handler from functional options and wraps it in
// LogHandlerDecorator, which appends attributes pulled from the record's context through
// registered ContextExtractor callbacks.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "simplehelpers"),
//	    logger.WithLevelName("debug"),
//	)
//	log.Warn("Parameter 'name' is not valid.", logger.Component("cookie"), logger.Parameter("name"))
//
// Attribute helpers (Component, Parameter, Operation, CookieName, Href, Count, Error) keep
// attribute keys consistent across packages. Error returns an empty attribute for a nil
// error, so it can be passed unconditionally.
//
// Records are written to stderr by default so that program output on stdout stays clean.
package logger
