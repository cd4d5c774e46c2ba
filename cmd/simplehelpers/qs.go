package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/simplehelpers"
	"github.com/dmitrymomot/simplehelpers/pkg/querystring"
)

func newQueryStringCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "qs",
		Aliases: []string{"querystring"},
		Short:   "Query string helpers",
	}
	cmd.AddCommand(
		newQSGetCommand(a),
		newQSAddCommand(a),
		newQSToJSONCommand(a),
		newQSAppendToCommand(a),
	)
	return cmd
}

// queryFlags selects the query string a subcommand works on: --query wins over the
// query of --url.
type queryFlags struct {
	query string
	url   string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.query, "query", "", "query string to work on, e.g. ?a=1&b=2")
	cmd.Flags().StringVar(&f.url, "url", "", "page address whose query string is used")
}

func (f *queryFlags) resolve() (string, error) {
	if f.query != "" || f.url == "" {
		return f.query, nil
	}
	page, err := simplehelpers.NewPage(f.url, nil)
	if err != nil {
		return "", err
	}
	return page.Location().Search(), nil
}

func newQSGetCommand(a *app) *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:     "get <key>",
		Short:   "Print the raw values of key, one per line",
		Example: `  simplehelpers qs get utm_source --query "?utm_source=mail&utm_source=web"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.helpers(nil)
			if err != nil {
				return err
			}
			query, err := qf.resolve()
			if err != nil {
				return err
			}

			for _, v := range h.QueryString.GetFrom(query, args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	qf.register(cmd)
	return cmd
}

func newQSAddCommand(a *app) *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:     "add <key> <value>",
		Short:   "Print the query string with key=value appended",
		Example: `  simplehelpers qs add q "hello world" --query "?page=2"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.helpers(nil)
			if err != nil {
				return err
			}
			query, err := qf.resolve()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), h.QueryString.AddTo(query, args[0], args[1]))
			return nil
		},
	}
	qf.register(cmd)
	return cmd
}

func newQSToJSONCommand(a *app) *cobra.Command {
	var (
		qf     queryFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "tojson",
		Short:   "Print the query string as an object with decoded values",
		Example: `  simplehelpers qs tojson --query "?a=1&b=hello%20world" --format yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.helpers(nil)
			if err != nil {
				return err
			}
			query, err := qf.resolve()
			if err != nil {
				return err
			}

			return writeMap(cmd.OutOrStdout(), h.QueryString.ToMapFrom(query), format)
		},
	}
	qf.register(cmd)
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}

func writeMap(w io.Writer, m map[string]string, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q: must be json or yaml", format)
	}
}

func newQSAppendToCommand(a *app) *cobra.Command {
	var (
		pageURL string
		in      string
		scope   string
		domain  string
	)

	cmd := &cobra.Command{
		Use:   "appendto <query>",
		Short: "Append a query string to the links of an HTML page",
		Long: `Append a query string to the links of an HTML page and print the rewritten page.

In the default "exit" scope only links whose address does not contain the page
domain are rewritten. Any other scope rewrites every link. Links without an
address and in-page "#" links are never touched.`,
		Example: `  simplehelpers qs appendto "?ref=newsletter" --url https://example.com/ --in page.html
  curl -s https://example.com/ | simplehelpers qs appendto ref=home --url https://example.com/ --scope all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, closeBody, err := openInput(cmd, in)
			if err != nil {
				return err
			}
			defer closeBody()

			page, err := simplehelpers.NewPage(pageURL, body)
			if err != nil {
				return err
			}
			h, err := a.helpers(page)
			if err != nil {
				return err
			}

			opts := []querystring.AppendOption{querystring.WithScope(scope)}
			if cmd.Flags().Changed("domain") {
				opts = append(opts, querystring.WithDomain(domain))
			}

			msg, err := h.AppendQueryString(args[0], opts...)
			if err != nil {
				return err
			}
			a.log.InfoContext(cmd.Context(), msg)

			return page.Document().Render(cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&pageURL, "url", "", "address the page was served from")
	flags.StringVar(&in, "in", "-", "HTML file to read, - for standard input")
	flags.StringVar(&scope, "scope", querystring.ScopeExit, `"exit" for outbound links only, anything else for all links`)
	flags.StringVar(&domain, "domain", "", "domain that marks a link as internal (default: host of --url)")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
