package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRandomCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "random [max]",
		Short: "Print a random integer between 1 and max",
		Long: `Print a random integer between 1 and max inclusive.

Without max the configured default (RANDOM_DEFAULT_MAX, 10) is used. An invalid
max prints 0 and logs a warning.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.helpers(nil)
			if err != nil {
				return err
			}

			n := h.Random.Default()
			if len(args) == 1 {
				max, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("max must be an integer: %w", err)
				}
				n = h.Random.Int(max)
			}

			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
