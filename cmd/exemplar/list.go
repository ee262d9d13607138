package main

import (
	"github.com/spf13/cobra"

	"go.llib.dev/exemplar/internal/catalog"
)

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the studies of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return catalog.FprintTable(cmd.OutOrStdout(), catalog.All())
		},
	}
}
