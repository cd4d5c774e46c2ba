package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/simplehelpers"
	"github.com/dmitrymomot/simplehelpers/pkg/config"
	"github.com/dmitrymomot/simplehelpers/pkg/logger"
)

// app is the state shared by every subcommand once the root command has loaded the
// configuration.
type app struct {
	cfg       simplehelpers.Config
	log       *slog.Logger
	logLevel  string
	logFormat string
	envFile   string
}

// helpers builds Helpers for page with the loaded configuration.
func (a *app) helpers(page simplehelpers.Page, opts ...simplehelpers.Option) (*simplehelpers.Helpers, error) {
	opts = append([]simplehelpers.Option{simplehelpers.WithLogger(a.log)}, opts...)
	return simplehelpers.NewFromConfig(page, a.cfg, opts...)
}

// commandKey carries the command path in the command context; every record logged with
// that context gets a "command" attribute.
type commandKey struct{}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "simplehelpers",
		Short: "Page helper toolkit: text cleanup, query strings, cookies and random numbers",
		Long: `simplehelpers exposes the page helpers on the command line.

Configuration is read from the environment (and an optional .env file):
  LOG_LEVEL, LOG_FORMAT, APP_ENV, COOKIE_DOMAIN, COOKIE_DAYS, COOKIE_SECURE,
  COOKIE_SAME_SITE, RANDOM_DEFAULT_MAX.
Flags override the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	flags.StringVar(&a.envFile, "env-file", "", "additional .env file to load")

	cmd.AddCommand(
		newCleanCommand(a),
		newExtractCommand(a),
		newQueryStringCommand(a),
		newRandomCommand(a),
		newCookieCommand(a),
	)

	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}

	var cfg simplehelpers.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = cfg.Logger(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("command", commandKey{}),
	)
	logger.SetAsDefault(a.log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, commandKey{}, cmd.CommandPath()))
	return nil
}
