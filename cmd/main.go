// Package main provides the CLI entrypoint for the prospector tool. It wires
// subcommands (create, materialize, aggregate, merge), loads configuration,
// and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"prospector/internal/config"
	"prospector/internal/pipeline"
	"prospector/pkg/domain"
	"prospector/pkg/logger"
	"prospector/pkg/storage/csvstore"
	"prospector/pkg/websets/exa"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newPipeline wires the Exa client and the CSV table store into a Pipeline
// using configuration values.
func newPipeline(cfg *config.Config) pipeline.Pipeline {
	client := exa.New(&http.Client{Timeout: cfg.Exa.Timeout}, cfg.Exa.BaseURL, cfg.Exa.APIKey)

	return pipeline.New(client, csvstore.New(), pipeline.NewOptions(cfg))
}

// printTable renders the table as CSV on stdout.
func printTable(ctx context.Context, table domain.Table) {
	if err := csvstore.Encode(os.Stdout, table); err != nil {
		logger.Fatal(ctx, "could not render table", zap.Error(err))
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "prospector",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	// a local .env provides the API key during development
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		createCommand(cfg),
		materializeCommand(cfg),
		aggregateCommand(cfg),
		mergeCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
