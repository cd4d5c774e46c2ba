package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/simplehelpers/pkg/pairs"
)

func newExtractCommand(a *app) *cobra.Command {
	var separator, delimiter string

	cmd := &cobra.Command{
		Use:   "extract <input> <key>",
		Short: "Print the values of key in a delimited key/value string",
		Example: `  simplehelpers extract "foo=bar; baz=qux" foo
  simplehelpers extract "a:1,b:2,a:3" a --separator : --delimiter ,`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.helpers(nil)
			if err != nil {
				return err
			}

			values := h.Pairs.Extract(args[0], args[1],
				pairs.WithSeparator(separator),
				pairs.WithDelimiter(delimiter),
			)
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&separator, "separator", pairs.DefaultSeparator, "string between key and value")
	cmd.Flags().StringVar(&delimiter, "delimiter", pairs.DefaultDelimiter, "string between pairs")

	return cmd
}
