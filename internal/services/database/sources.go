// Package database provides Postgres-backed persistence for source
// status records.
package database

import (
	"context"
	"fmt"
	"time"

	"notebook-relay/internal/models"
)

// SourceRepository handles status updates on source records.
type SourceRepository struct {
	db *DB
}

// NewSourceRepository creates a new source repository.
func NewSourceRepository(db *DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// MarkFailed transitions the source to failed with an error message.
func (r *SourceRepository) MarkFailed(ctx context.Context, sourceID, message string) error {
	query := `
		UPDATE sources
		SET status = $2, error_message = $3, updated_at = $4
		WHERE source_id = $1`

	affected, err := r.db.ExecContext(ctx, query,
		sourceID,
		string(models.SourceStatusFailed),
		message,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to mark source %s as failed: %w", sourceID, err)
	}
	if affected == 0 {
		return models.ErrSourceNotFound
	}

	return nil
}

// MarkCompleted transitions the source to completed. Title and summary are
// only written when non-empty so a partial callback never blanks existing
// fields.
func (r *SourceRepository) MarkCompleted(ctx context.Context, sourceID, title, summary string) error {
	query := `
		UPDATE sources
		SET status = $2,
			error_message = NULL,
			title = COALESCE(NULLIF($3, ''), title),
			summary = COALESCE(NULLIF($4, ''), summary),
			updated_at = $5
		WHERE source_id = $1`

	affected, err := r.db.ExecContext(ctx, query,
		sourceID,
		string(models.SourceStatusCompleted),
		title,
		summary,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to mark source %s as completed: %w", sourceID, err)
	}
	if affected == 0 {
		return models.ErrSourceNotFound
	}

	return nil
}

// Ping verifies the store is reachable.
func (r *SourceRepository) Ping(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}
