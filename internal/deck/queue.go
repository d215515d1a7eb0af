// Package deck implements the spaced-repetition core: the three-tier
// queue builder and the review-state reducer. Everything here is a
// pure function over caller-supplied state; the clock is an argument,
// never read internally.
package deck

import (
	"sort"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
)

// BuildQueue orders cards for presentation. Cards partition into three
// tiers: unseen (no review state) in original order, then
// not-yet-mastered by ascending last-review time, then mastered by
// ascending last-review time. The card identified by lastActedID is
// excluded from the seen tiers for this one build; the caller rebuilds
// the queue before the next read, which readmits it.
//
// The result is a permutation of the input minus at most the excluded
// card. Calling twice with identical arguments yields identical output.
func BuildQueue(
	cards []domain.LearningCard,
	states domain.ReviewStateMap,
	lastActedID string,
) []domain.LearningCard {
	var unseen, learning, mastered []domain.LearningCard

	for _, card := range cards {
		state, seen := states[card.ID]
		switch {
		case !seen:
			unseen = append(unseen, card)
		case card.ID == lastActedID:
			// Rests for one cycle.
		case state.Mastered:
			mastered = append(mastered, card)
		default:
			learning = append(learning, card)
		}
	}

	byLastReviewed := func(cards []domain.LearningCard) func(i, j int) bool {
		return func(i, j int) bool {
			return states[cards[i].ID].LastReviewedAt.Before(states[cards[j].ID].LastReviewedAt)
		}
	}
	sort.SliceStable(learning, byLastReviewed(learning))
	sort.SliceStable(mastered, byLastReviewed(mastered))

	queue := make([]domain.LearningCard, 0, len(unseen)+len(learning)+len(mastered))
	queue = append(queue, unseen...)
	queue = append(queue, learning...)
	queue = append(queue, mastered...)
	return queue
}
