package deck

import (
	"time"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// ApplyReview reduces one review action into a new review-state
// mapping. The input mapping is never mutated.
//
// Confirm increments the consecutive-confirm counter; the moment the
// counter first reaches the mastery threshold the second return value
// is true, exactly once per mastery. Reject resets the counter and
// mastery. Skip changes nothing; the caller only records the card as
// last-acted so the next queue build lets it rest.
func ApplyReview(
	action domain.ReviewAction,
	cardID string,
	states domain.ReviewStateMap,
	now time.Time,
) (domain.ReviewStateMap, bool) {
	if action == domain.ActionSkip {
		return states.Clone(), false
	}

	next := states.Clone()
	state := next[cardID]
	state.CardID = cardID

	masteryJustAchieved := false
	switch action {
	case domain.ActionConfirm:
		state.ConsecutiveConfirms++
		if !state.Mastered && state.ConsecutiveConfirms >= domain.MasteryThreshold {
			masteryJustAchieved = state.ConsecutiveConfirms == domain.MasteryThreshold
			state.Mastered = true
		}
	case domain.ActionReject:
		state.ConsecutiveConfirms = 0
		state.Mastered = false
	}
	state.LastReviewedAt = now

	next[cardID] = state
	return next, masteryJustAchieved
}
