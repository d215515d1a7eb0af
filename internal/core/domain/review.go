package domain

import "time"

// MasteryThreshold is the number of consecutive confirmations after
// which a card counts as mastered.
const MasteryThreshold = 3

// ReviewAction is one user interaction with the current card.
type ReviewAction string

const (
	// ActionConfirm signals the user understood the card.
	ActionConfirm ReviewAction = "confirm"

	// ActionReject signals the user did not understand the card.
	ActionReject ReviewAction = "reject"

	// ActionSkip defers the card without mutating its review state.
	ActionSkip ReviewAction = "skip"
)

// Valid reports whether the action is one of the closed set.
func (a ReviewAction) Valid() bool {
	switch a {
	case ActionConfirm, ActionReject, ActionSkip:
		return true
	}
	return false
}

// CardReviewState tracks review progress for a single card.
// One mapping of card id to state exists per reviewed card set.
//
// Invariant: Mastered holds exactly when ConsecutiveConfirms has
// reached MasteryThreshold without an intervening reject.
type CardReviewState struct {
	// CardID links back to the LearningCard.
	CardID string

	// ConsecutiveConfirms counts confirms since the last reject.
	ConsecutiveConfirms int

	// Mastered reports whether the card has been mastered.
	Mastered bool

	// LastReviewedAt is when the card was last confirmed or rejected.
	LastReviewedAt time.Time
}

// ReviewStateMap is the per-deck mapping from card id to review state.
type ReviewStateMap map[string]CardReviewState

// Clone returns a shallow copy of the mapping. The reducer operates on
// copies so callers can treat mappings as values.
func (m ReviewStateMap) Clone() ReviewStateMap {
	out := make(ReviewStateMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MasteredCount returns the number of mastered entries.
func (m ReviewStateMap) MasteredCount() int {
	n := 0
	for _, s := range m {
		if s.Mastered {
			n++
		}
	}
	return n
}

// AllMastered reports whether every card in a set of the given size is
// mastered. An empty set is never "all mastered".
func (m ReviewStateMap) AllMastered(total int) bool {
	return total > 0 && m.MasteredCount() >= total
}

// SessionProgress holds cross-session aggregate counters. It lives in
// a single global store entry, read at session start and written back
// on each qualifying event.
type SessionProgress struct {
	// CardsMastered is the all-time count of mastery events.
	CardsMastered int

	// DecksCompleted is the all-time count of fully mastered decks.
	DecksCompleted int

	// ReviewActions is the all-time count of confirm/reject actions.
	ReviewActions int
}
