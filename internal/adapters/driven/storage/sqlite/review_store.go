package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driven"
)

// reviewStateStore implements driven.ReviewStateStore.
type reviewStateStore struct {
	store *Store
}

var _ driven.ReviewStateStore = (*reviewStateStore)(nil)

// GetStates retrieves all review states for a repository.
// A repository never reviewed yields an empty map.
func (s *reviewStateStore) GetStates(ctx context.Context, repo string) (domain.ReviewStateMap, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT card_id, consecutive_confirms, mastered, last_reviewed_at
		FROM review_states WHERE repo = ?
	`, repo)
	if err != nil {
		return nil, fmt.Errorf("querying review states: %w", err)
	}
	defer rows.Close()

	states := domain.ReviewStateMap{}
	for rows.Next() {
		var state domain.CardReviewState
		var mastered int
		var lastReviewed sql.NullString
		if err := rows.Scan(&state.CardID, &state.ConsecutiveConfirms, &mastered, &lastReviewed); err != nil {
			return nil, fmt.Errorf("scanning review state: %w", err)
		}
		state.Mastered = mastered == 1
		state.LastReviewedAt = parseNullableTime(lastReviewed)
		states[state.CardID] = state
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating review states: %w", err)
	}

	return states, nil
}

// SaveStates replaces the review states for a repository in one
// transaction so readers never observe a partial set.
func (s *reviewStateStore) SaveStates(ctx context.Context, repo string, states domain.ReviewStateMap) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM review_states WHERE repo = ?", repo); err != nil {
		return fmt.Errorf("clearing review states: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO review_states (repo, card_id, consecutive_confirms, mastered, last_reviewed_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, state := range states {
		if _, err := stmt.ExecContext(ctx, repo, state.CardID, state.ConsecutiveConfirms,
			boolToInt(state.Mastered), formatNullableTime(state.LastReviewedAt)); err != nil {
			return fmt.Errorf("saving review state: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Reset removes all review state for a repository.
func (s *reviewStateStore) Reset(ctx context.Context, repo string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM review_states WHERE repo = ?", repo)
	if err != nil {
		return fmt.Errorf("resetting review states: %w", err)
	}
	return nil
}
