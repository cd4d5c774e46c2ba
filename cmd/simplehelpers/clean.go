package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCleanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [text...]",
		Short: "Trim text and collapse whitespace runs to single spaces",
		Long: `Trim text and collapse whitespace runs to single spaces.

Arguments are joined with a space. Without arguments every line of standard
input is cleaned on its own.`,
		Example: `  simplehelpers clean "  hello    world "
  cat notes.txt | simplehelpers clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.helpers(nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				fmt.Fprintln(out, h.Text.Clean(strings.Join(args, " ")))
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				fmt.Fprintln(out, h.Text.Clean(scanner.Text()))
			}
			return scanner.Err()
		},
	}
}
