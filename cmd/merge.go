package main

import (
	"context"

	"prospector/internal/config"
	"prospector/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mergeCommand constructs the 'merge' subcommand that rebuilds the combined
// table from previously saved partial tables, without querying the provider.
func mergeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merges saved partial tables into one deduplicated table",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			save, _ := cmd.Flags().GetBool("save")
			folder, _ := cmd.Flags().GetString("folder")
			if folder == "" {
				folder = cfg.Data.Folder
			}

			table, err := newPipeline(cfg).MergeFromDisk(ctx, folder, save)
			if err != nil {
				logger.Fatal(ctx, "could not merge saved tables", zap.Error(err))
			}

			printTable(ctx, table)
		},
	}

	cmd.Flags().Bool("save", false, "Persist the merged table next to the partial tables")
	cmd.Flags().String("folder", "", "Folder holding the partial tables (defaults to the data folder)")

	return cmd
}
