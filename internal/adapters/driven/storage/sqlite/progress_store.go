package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/repodeck/repodeck-cli/internal/core/domain"
	"github.com/repodeck/repodeck-cli/internal/core/ports/driven"
)

// progressStore implements driven.ProgressStore.
// The counters live in a single fixed row.
type progressStore struct {
	store *Store
}

var _ driven.ProgressStore = (*progressStore)(nil)

// GetProgress retrieves the accumulated progress counters.
// A fresh installation yields zeroed counters.
func (s *progressStore) GetProgress(ctx context.Context) (domain.SessionProgress, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT cards_mastered, decks_completed, review_actions
		FROM progress WHERE id = 1
	`)

	var progress domain.SessionProgress
	err := row.Scan(&progress.CardsMastered, &progress.DecksCompleted, &progress.ReviewActions)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SessionProgress{}, nil
	}
	if err != nil {
		return domain.SessionProgress{}, fmt.Errorf("scanning progress: %w", err)
	}
	return progress, nil
}

// SaveProgress stores the accumulated progress counters.
func (s *progressStore) SaveProgress(ctx context.Context, progress domain.SessionProgress) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO progress (id, cards_mastered, decks_completed, review_actions)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			cards_mastered = excluded.cards_mastered,
			decks_completed = excluded.decks_completed,
			review_actions = excluded.review_actions
	`, progress.CardsMastered, progress.DecksCompleted, progress.ReviewActions)

	if err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}
