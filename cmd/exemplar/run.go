package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.llib.dev/exemplar/internal/catalog"
	"go.llib.dev/exemplar/pkg/logging"
)

func runCommand(logger *logging.Logger) *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "run [study]",
		Short: "Run a study's demonstration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if all {
				if len(args) != 0 {
					return fmt.Errorf("cannot combine --all with a study name")
				}
				logger.Info(ctx, "running every study", logging.Field("count", len(catalog.Names())))
				return catalog.RunAll(ctx, out)
			}
			if len(args) != 1 {
				return fmt.Errorf("either name a study or pass --all")
			}
			logger.Debug(ctx, "running study", logging.Field("study", args[0]))
			return catalog.Run(ctx, out, args[0])
		},
	}

	c.Flags().BoolVar(&all, "all", false, "run every study of the catalog")
	return c
}
