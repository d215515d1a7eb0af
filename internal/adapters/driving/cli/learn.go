package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/repodeck/repodeck-cli/internal/adapters/driving/tui"
	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driving"
)

// noTUI prints the generated deck instead of opening the review UI.
var noTUI bool

var learnCmd = &cobra.Command{
	Use:   "learn <owner/repo>",
	Short: "Build a learning deck from a repository and review it",
	Long: `Fetch a GitHub repository, extract its most instructive code blocks,
and open an interactive review session.

Review controls:
  y/Enter - got it
  n       - show again
  s/Tab   - skip for now
  r       - restart the deck
  q       - quit`,
	Args: cobra.ExactArgs(1),
	RunE: runLearn,
}

func init() {
	learnCmd.Flags().BoolVar(&noTUI, "no-tui", false, "print the deck instead of opening the review UI")
	rootCmd.AddCommand(learnCmd)
}

func runLearn(cmd *cobra.Command, args []string) error {
	if ingestor == nil || sessions == nil {
		return fmt.Errorf("services not initialised")
	}

	ctx := cmd.Context()

	deck, err := ingestor.Ingest(ctx, args[0])
	if err != nil {
		return fmt.Errorf("building deck: %w", err)
	}

	cmd.Printf("Generated %d cards from %s\n", len(deck.Cards), deck.Repo.FullName)

	if noTUI {
		printDeck(cmd, deck)
		return nil
	}

	session, err := sessions.Start(ctx, deck)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	return runReviewUI(cmd, deck, session)
}

// runReviewUI runs the bubbletea review program for a started session.
func runReviewUI(cmd *cobra.Command, deck *domain.Deck, session driving.ReviewSession) error {
	// Panic recovery keeps the stack trace visible after the alt
	// screen is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in review UI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(cmd.Context(), deck, session)
	if err != nil {
		return fmt.Errorf("creating review UI: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("review UI error: %w", err)
	}

	return nil
}

// printDeck writes a plain-text listing of the deck.
func printDeck(cmd *cobra.Command, deck *domain.Deck) {
	for i, card := range deck.Cards {
		cmd.Printf("%3d. [%s] %s (%s, difficulty %d)\n",
			i+1, card.Kind, card.Title, card.FilePath, card.Difficulty)
	}
}
