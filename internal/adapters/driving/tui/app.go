// Package tui implements the interactive deck review interface
// following the Elm architecture on Bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/repodeck/repodeck-cli/internal/adapters/driving/tui/keymap"
	"github.com/repodeck/repodeck-cli/internal/adapters/driving/tui/styles"
	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driving"
)

// chromeHeight is the number of terminal rows taken by everything
// around the code panel (header, card metadata, footer).
const chromeHeight = 10

// App is the deck review application. It implements tea.Model.
type App struct {
	ctx     context.Context
	session driving.ReviewSession
	deck    *domain.Deck

	styles *styles.Styles
	keys   *keymap.KeyMap
	help   help.Model
	code   viewport.Model

	current   domain.LearningCard
	completed bool
	flash     string
	err       error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// reviewAppliedMsg reports the outcome of a review action.
type reviewAppliedMsg struct {
	action   domain.ReviewAction
	title    string
	mastered bool
	err      error
}

// restartedMsg reports the outcome of a deck restart.
type restartedMsg struct {
	err error
}

// NewApp creates the review application for a started session.
func NewApp(ctx context.Context, deck *domain.Deck, session driving.ReviewSession) (*App, error) {
	if deck == nil || session == nil {
		return nil, fmt.Errorf("creating app: deck and session are required")
	}

	a := &App{
		ctx:     ctx,
		session: session,
		deck:    deck,
		styles:  styles.DefaultStyles(),
		keys:    keymap.DefaultKeyMap(),
		help:    help.New(),
		code:    viewport.New(0, 0),
	}
	a.refresh()
	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("repodeck - "+a.deck.Repo.FullName),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.code.Width = msg.Width - 4
		a.code.Height = max(msg.Height-chromeHeight, 3)
		a.help.Width = msg.Width
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case reviewAppliedMsg:
		a.err = msg.err
		a.flash = ""
		if msg.mastered {
			a.flash = fmt.Sprintf("Mastered %s (%d/%d)",
				msg.title, a.session.MasteredCount(), len(a.deck.Cards))
		}
		a.refresh()
		return a, nil

	case restartedMsg:
		a.err = msg.err
		a.flash = ""
		a.refresh()
		return a, nil
	}

	var cmd tea.Cmd
	a.code, cmd = a.code.Update(msg)
	return a, cmd
}

// handleKey routes key presses. Review actions run as commands so the
// persistence round-trip stays out of the update loop.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := a.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil

	case key.Matches(msg, keys.Restart):
		return a, a.restartCmd()

	case key.Matches(msg, keys.Confirm):
		return a, a.applyCmd(domain.ActionConfirm)

	case key.Matches(msg, keys.Reject):
		return a, a.applyCmd(domain.ActionReject)

	case key.Matches(msg, keys.Skip):
		return a, a.applyCmd(domain.ActionSkip)
	}

	var cmd tea.Cmd
	a.code, cmd = a.code.Update(msg)
	return a, cmd
}

// applyCmd records a review action against the current card.
func (a *App) applyCmd(action domain.ReviewAction) tea.Cmd {
	if a.completed {
		return nil
	}
	title := a.current.Title
	return func() tea.Msg {
		mastered, err := a.session.Apply(a.ctx, action)
		return reviewAppliedMsg{action: action, title: title, mastered: mastered, err: err}
	}
}

// restartCmd clears all review progress for the deck.
func (a *App) restartCmd() tea.Cmd {
	return func() tea.Msg {
		return restartedMsg{err: a.session.Restart(a.ctx)}
	}
}

// refresh pulls the head of the queue into the view state.
func (a *App) refresh() {
	a.completed = a.session.Completed()

	card, err := a.session.Current()
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			a.err = err
		}
		a.current = domain.LearningCard{}
		a.code.SetContent("")
		return
	}
	a.current = card
	a.code.SetContent(card.Code)
	a.code.GotoTop()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading deck..."
	}

	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n")

	if a.completed {
		b.WriteString(a.completedView())
	} else {
		b.WriteString(a.cardView())
	}

	if a.flash != "" {
		b.WriteString("\n" + a.styles.Success.Render(a.flash))
	}
	if a.err != nil {
		b.WriteString("\n" + a.styles.Error.Render("Error: "+a.err.Error()))
	}

	b.WriteString("\n" + a.styles.StatusBar.Width(a.width).Render(a.help.View(a.keys)))
	return b.String()
}

// headerView renders the title bar with mastery progress.
func (a *App) headerView() string {
	title := a.styles.Title.Render("repodeck")
	repo := a.styles.Subtitle.Render(a.deck.Repo.FullName)
	progress := a.styles.Muted.Render(
		fmt.Sprintf("%d/%d mastered", a.session.MasteredCount(), len(a.deck.Cards)))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", repo, "  ", progress)
}

// cardView renders the current card with its code panel.
func (a *App) cardView() string {
	var b strings.Builder

	badges := lipgloss.JoinHorizontal(lipgloss.Center,
		a.styles.Badge.Render(string(a.current.Kind)),
		" ",
		a.styles.Badge.Render(difficultyLabel(a.current.Difficulty)),
		" ",
		a.styles.Muted.Render(a.current.Language),
	)

	b.WriteString(a.styles.Subtitle.Render(a.current.Title) + "  " + badges + "\n")
	b.WriteString(a.styles.Muted.Render(a.current.FilePath) + "\n")
	b.WriteString(a.styles.CodeBlock.Render(a.code.View()) + "\n")
	b.WriteString(a.styles.Normal.Render(a.current.Explanation) + "\n")

	if next, ok := a.session.Peek(); ok {
		b.WriteString(a.styles.Muted.Render("next: "+next.Title) + "\n")
	}

	return b.String()
}

// completedView renders the all-mastered banner.
func (a *App) completedView() string {
	progress := a.session.Progress()
	var b strings.Builder
	b.WriteString(a.styles.Success.Render("Deck complete! Every card is mastered.") + "\n\n")
	b.WriteString(a.styles.Normal.Render(fmt.Sprintf(
		"Lifetime: %d cards mastered, %d decks completed, %d reviews.",
		progress.CardsMastered, progress.DecksCompleted, progress.ReviewActions)) + "\n")
	b.WriteString(a.styles.Muted.Render("Press r to restart the deck or q to quit.") + "\n")
	return b.String()
}

// difficultyLabel maps a difficulty tier to its display form.
func difficultyLabel(tier int) string {
	switch tier {
	case 3:
		return "hard"
	case 2:
		return "medium"
	default:
		return "easy"
	}
}
