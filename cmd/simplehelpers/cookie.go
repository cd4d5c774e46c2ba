package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/simplehelpers"
	"github.com/dmitrymomot/simplehelpers/pkg/cookie"
	"github.com/dmitrymomot/simplehelpers/pkg/logger"
)

func newCookieCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cookie",
		Short: "Cookie helpers on an emulated page",
	}
	cmd.AddCommand(newCookieRoundTripCommand(a))
	return cmd
}

func newCookieRoundTripCommand(a *app) *cobra.Command {
	var (
		pageURL  string
		domain   string
		days     int
		secure   bool
		sameSite string
		disabled bool
	)

	cmd := &cobra.Command{
		Use:   "roundtrip <name> <value>",
		Short: "Set, read back and delete a cookie on an emulated page",
		Example: `  simplehelpers cookie roundtrip theme dark
  simplehelpers cookie roundtrip lang en --url https://www.example.com/ --domain example.com --days 30`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jarOpts := []cookie.JarOption{cookie.WithLogger(a.log)}
			if disabled {
				jarOpts = append(jarOpts, cookie.WithDisabled())
			}

			page, err := simplehelpers.NewPage(pageURL, nil, jarOpts...)
			if err != nil {
				return err
			}
			h, err := a.helpers(page)
			if err != nil {
				return err
			}

			name, value := args[0], args[1]
			out := cmd.OutOrStdout()

			var opts []cookie.Option
			if cmd.Flags().Changed("domain") {
				opts = append(opts, cookie.WithDomain(domain))
			}
			if cmd.Flags().Changed("days") {
				opts = append(opts, cookie.WithDays(days))
			}
			if cmd.Flags().Changed("secure") {
				opts = append(opts, cookie.WithSecure(secure))
			}
			if cmd.Flags().Changed("samesite") {
				opts = append(opts, cookie.WithSameSite(sameSite))
			}

			written, err := h.Cookies.Set(name, value, opts...)
			if err != nil {
				a.log.ErrorContext(cmd.Context(), "set failed", logger.CookieName(name), logger.Error(err))
				return fmt.Errorf("set: %s", cookie.Message(err))
			}
			fmt.Fprintf(out, "set:    %s\n", written)
			fmt.Fprintf(out, "get:    %s\n", h.Cookies.Get(name))
			fmt.Fprintf(out, "header: %s\n", page.Jar().Cookie())

			var delOpts []cookie.Option
			if cmd.Flags().Changed("domain") {
				delOpts = append(delOpts, cookie.WithDomain(domain))
			}
			msg, err := h.Cookies.Delete(name, delOpts...)
			if err != nil {
				return fmt.Errorf("delete: %s", cookie.Message(err))
			}
			fmt.Fprintf(out, "delete: %s\n", msg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&pageURL, "url", "https://localhost/", "address of the emulated page")
	flags.StringVar(&domain, "domain", "", "cookie domain")
	flags.IntVar(&days, "days", 0, "days until expiry, 0 for a session cookie")
	flags.BoolVar(&secure, "secure", false, "send the cookie over https only")
	flags.StringVar(&sameSite, "samesite", "", "samesite attribute: Lax, Strict or None")
	flags.BoolVar(&disabled, "disabled", false, "emulate a browser that blocks cookies")

	return cmd
}
