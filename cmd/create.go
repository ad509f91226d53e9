package main

import (
	"context"
	"fmt"

	"prospector/internal/config"
	"prospector/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// createCommand constructs the 'create' subcommand that starts a new webset
// search for the given vertical. Collection runs asynchronously on the
// provider side; materialize the webset once it has finished.
func createCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a webset searching for companies in a vertical",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			vertical, _ := cmd.Flags().GetString("vertical")

			ws, err := newPipeline(cfg).CreateVerticalWebset(ctx, vertical)
			if err != nil {
				logger.Fatal(ctx, "could not create webset", zap.Error(err))
			}

			logger.Info(ctx, "webset created", zap.String("webset", ws.ID), zap.String("vertical", vertical))
			fmt.Println(ws.ID) //nolint: forbidigo
		},
	}

	cmd.Flags().String("vertical", "", "Vertical to search companies in (e.g. \"Conservation Agriculture\")")
	_ = cmd.MarkFlagRequired("vertical")

	return cmd
}
