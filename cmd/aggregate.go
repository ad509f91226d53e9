package main

import (
	"context"

	"prospector/internal/config"
	"prospector/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// aggregateCommand constructs the 'aggregate' subcommand that flattens every
// webset, deduplicates by company and prints the combined table as CSV.
func aggregateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Combines all websets into one deduplicated table",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			save, _ := cmd.Flags().GetBool("save")

			table, err := newPipeline(cfg).AggregateAll(ctx, save)
			if err != nil {
				logger.Fatal(ctx, "could not aggregate websets", zap.Error(err))
			}

			printTable(ctx, table)
		},
	}

	cmd.Flags().Bool("save", false, "Persist the combined table under the data folder")

	return cmd
}
