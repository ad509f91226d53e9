package main

import (
	"context"

	"prospector/internal/config"
	"prospector/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// materializeCommand constructs the 'materialize' subcommand that fetches one
// webset, flattens its items into a table and prints it as CSV.
func materializeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materialize <webset-id>",
		Short: "Flattens one webset into a table",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			save, _ := cmd.Flags().GetBool("save")

			table, err := newPipeline(cfg).Materialize(ctx, args[0], save)
			if err != nil {
				logger.Fatal(ctx, "could not materialize webset", zap.Error(err))
			}

			printTable(ctx, table)
		},
	}

	cmd.Flags().Bool("save", false, "Persist the table as <vertical>.csv under the data folder")

	return cmd
}
