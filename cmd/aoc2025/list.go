package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the days that have a solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range a.registry.Days() {
				fmt.Fprintf(cmd.OutOrStdout(), "day %d\n", d)
			}
			return nil
		},
	}
}
