package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driven"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driving"
	"github.com/repodeck/repodeck-cli/internal/deck"
	"github.com/repodeck/repodeck-cli/internal/logger"
)

// Ensure the service and its sessions implement the interfaces.
var (
	_ driving.SessionManager = (*SessionService)(nil)
	_ driving.ReviewSession  = (*reviewSession)(nil)
)

// SessionService starts review sessions backed by persistent stores.
type SessionService struct {
	reviewStore   driven.ReviewStateStore
	progressStore driven.ProgressStore
	now           func() time.Time
}

// NewSessionService creates a new session service.
func NewSessionService(reviewStore driven.ReviewStateStore, progressStore driven.ProgressStore) *SessionService {
	return &SessionService{
		reviewStore:   reviewStore,
		progressStore: progressStore,
		now:           time.Now,
	}
}

// Start opens a review session for a deck. Review state persisted by
// earlier sessions on the same repository is loaded so mastery carries
// over; unreadable state degrades to a fresh start rather than failing.
func (s *SessionService) Start(ctx context.Context, d *domain.Deck) (driving.ReviewSession, error) {
	if d == nil || len(d.Cards) == 0 {
		return nil, fmt.Errorf("%w: deck has no cards", domain.ErrInvalidInput)
	}

	states, err := s.reviewStore.GetStates(ctx, d.Repo.FullName)
	if err != nil {
		logger.Warn("Could not load review state for %s, starting fresh: %v", d.Repo.FullName, err)
		states = domain.ReviewStateMap{}
	}
	if states == nil {
		states = domain.ReviewStateMap{}
	}

	progress, err := s.progressStore.GetProgress(ctx)
	if err != nil {
		logger.Warn("Could not load progress counters: %v", err)
		progress = domain.SessionProgress{}
	}

	sess := &reviewSession{
		service:  s,
		deck:     d,
		states:   states,
		progress: progress,
	}
	sess.rebuild()
	return sess, nil
}

// reviewSession is the live state of one run through a deck.
// A mutex serialises all access; the TUI and any background save path
// go through the same lock.
type reviewSession struct {
	service *SessionService
	deck    *domain.Deck

	mu          sync.Mutex
	states      domain.ReviewStateMap
	queue       []domain.LearningCard
	lastActedID string
	progress    domain.SessionProgress
}

// rebuild recomputes the queue from current state. Callers hold mu
// except during construction. When resting the last-acted card would
// empty the queue (single-card decks), it is readmitted immediately.
func (r *reviewSession) rebuild() {
	r.queue = deck.BuildQueue(r.deck.Cards, r.states, r.lastActedID)
	if len(r.queue) == 0 && len(r.deck.Cards) > 0 {
		r.queue = deck.BuildQueue(r.deck.Cards, r.states, "")
	}
}

// Current returns the card at the head of the queue.
func (r *reviewSession) Current() (domain.LearningCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) == 0 {
		return domain.LearningCard{}, domain.ErrNotFound
	}
	return r.queue[0], nil
}

// Peek returns the card after the current one, if any.
func (r *reviewSession) Peek() (domain.LearningCard, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) < 2 {
		return domain.LearningCard{}, false
	}
	return r.queue[1], true
}

// Queue returns a copy of the remaining cards in presentation order.
func (r *reviewSession) Queue() []domain.LearningCard {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.LearningCard, len(r.queue))
	copy(out, r.queue)
	return out
}

// Apply records a review action against the current card, persists the
// updated state and advances the queue. Persistence failures are logged
// and the session continues in memory.
func (r *reviewSession) Apply(ctx context.Context, action domain.ReviewAction) (bool, error) {
	if !action.Valid() {
		return false, fmt.Errorf("%w: unknown review action %q", domain.ErrInvalidInput, action)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) == 0 {
		return false, domain.ErrNotFound
	}
	card := r.queue[0]

	wasCompleted := r.states.MasteredCount() == len(r.deck.Cards)

	next, mastered := deck.ApplyReview(action, card.ID, r.states, r.service.now())
	r.states = next
	r.lastActedID = card.ID
	r.rebuild()

	if action != domain.ActionSkip {
		r.progress.ReviewActions++
	}
	if mastered {
		r.progress.CardsMastered++
		logger.Info("Mastered %s (%d/%d)", card.Title, r.states.MasteredCount(), len(r.deck.Cards))
	}
	if !wasCompleted && r.states.MasteredCount() == len(r.deck.Cards) {
		r.progress.DecksCompleted++
	}

	if err := r.service.reviewStore.SaveStates(ctx, r.deck.Repo.FullName, r.states); err != nil {
		logger.Warn("Could not persist review state: %v", err)
	}
	if err := r.service.progressStore.SaveProgress(ctx, r.progress); err != nil {
		logger.Warn("Could not persist progress counters: %v", err)
	}

	return mastered, nil
}

// MasteredCount returns how many of the deck's cards are mastered.
func (r *reviewSession) MasteredCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states.MasteredCount()
}

// Completed reports whether every card in the deck is mastered.
func (r *reviewSession) Completed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states.AllMastered(len(r.deck.Cards))
}

// Restart clears all review state for the deck's repository.
func (r *reviewSession) Restart(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.service.reviewStore.Reset(ctx, r.deck.Repo.FullName); err != nil {
		return fmt.Errorf("reset review state: %w", err)
	}
	r.states = domain.ReviewStateMap{}
	r.lastActedID = ""
	r.rebuild()
	return nil
}

// Progress returns the lifetime counters including this session.
func (r *reviewSession) Progress() domain.SessionProgress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.progress
}
