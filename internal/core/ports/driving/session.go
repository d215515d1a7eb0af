package driving

import (
	"context"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// SessionManager starts review sessions over decks.
type SessionManager interface {
	// Start opens a review session for a deck, loading any review state
	// persisted from earlier sessions on the same repository.
	Start(ctx context.Context, deck *domain.Deck) (ReviewSession, error)
}

// ReviewSession is a live run through a deck's review queue. A session
// is safe for use from a single goroutine per call; implementations
// serialise concurrent callers internally.
type ReviewSession interface {
	// Current returns the card at the head of the queue.
	// Returns domain.ErrNotFound when the queue is empty.
	Current() (domain.LearningCard, error)

	// Peek returns the card after the current one, if any.
	Peek() (domain.LearningCard, bool)

	// Queue returns the remaining cards in presentation order.
	Queue() []domain.LearningCard

	// Apply records a review action against the current card and
	// advances the queue. The boolean reports whether the action
	// completed the card's mastery.
	Apply(ctx context.Context, action domain.ReviewAction) (bool, error)

	// MasteredCount returns how many of the deck's cards are mastered.
	MasteredCount() int

	// Completed reports whether every card in the deck is mastered.
	Completed() bool

	// Restart clears all review state for the deck's repository and
	// rebuilds the queue from scratch.
	Restart(ctx context.Context) error

	// Progress returns the lifetime counters after this session's
	// actions have been folded in.
	Progress() domain.SessionProgress
}
