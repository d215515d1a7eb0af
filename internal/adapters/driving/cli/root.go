// Package cli implements the command-line interface using cobra.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/repodeck/repodeck-cli/internal/core/ports/driving"
	"github.com/repodeck/repodeck-cli/internal/logger"
)

// version is the build version, set at link time or via SetVersion.
var version = "dev"

// Services wired in by the composition root.
var (
	ingestor driving.RepoIngestor
	sessions driving.SessionManager
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "repodeck",
	Short: "Turn any GitHub repository into a deck of learning cards",
	Long: `Repodeck ingests a GitHub repository, extracts its most instructive
code blocks, and turns them into a spaced-repetition card deck you
review in the terminal.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the application services the commands depend on.
func SetServices(i driving.RepoIngestor, s driving.SessionManager) {
	ingestor = i
	sessions = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
