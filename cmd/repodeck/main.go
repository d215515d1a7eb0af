// Command repodeck is the entry point for the Repodeck CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/repodeck/repodeck-cli/internal/adapters/driven/config/file"
	"github.com/repodeck/repodeck-cli/internal/adapters/driven/storage/sqlite"
	"github.com/repodeck/repodeck-cli/internal/adapters/driving/cli"
	"github.com/repodeck/repodeck-cli/internal/connectors/github"
	"github.com/repodeck/repodeck-cli/internal/core/services"
	"github.com/repodeck/repodeck-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(config.GetString("data_dir"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing database: %v", err)
		}
	}()

	source := github.NewSource(newGitHubClient(ctx, config.GetString("github_token")))

	ingestor := services.NewIngestService(source, services.IngestOptions{
		MaxFiles:   config.GetInt("max_files"),
		FetchBatch: config.GetInt("batch_size"),
		MaxCards:   config.GetInt("max_cards"),
	})
	sessions := services.NewSessionService(store.ReviewStateStore(), store.ProgressStore())

	cli.SetVersion(version)
	cli.SetServices(ingestor, sessions)

	return cli.ExecuteContext(ctx)
}

// newGitHubClient prefers the environment token over the config file,
// falling back to anonymous access with its lower rate limit.
func newGitHubClient(ctx context.Context, configToken string) *github.Client {
	token := os.Getenv("REPODECK_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		token = configToken
	}

	if token == "" {
		logger.Debug("no GitHub token configured, using anonymous access")
		return github.NewClient()
	}
	return github.NewClientWithToken(ctx, token)
}
