// Package status selects the store implementation used to persist source
// processing-state transitions.
package status

import (
	"context"
	"errors"

	"notebook-relay/internal/config"
	"notebook-relay/internal/services/database"
	"notebook-relay/internal/services/suparest"
)

// Store records processing-state transitions for source documents.
// Writes are update-by-key on the record identified by sourceID.
type Store interface {
	MarkFailed(ctx context.Context, sourceID, message string) error
	MarkCompleted(ctx context.Context, sourceID, title, summary string) error
	Ping(ctx context.Context) error
}

// ErrNotConfigured indicates no store credentials are present. Callers are
// expected to continue without a store; status writes are then skipped
// with a warning log rather than failing the request.
var ErrNotConfigured = errors.New("status store not configured")

// New picks the store implementation from the configuration: a direct
// Postgres connection when DATABASE_URL is set, otherwise the PostgREST
// fallback using the platform URL and service role key.
func New(cfg *config.Config) (Store, error) {
	if cfg.DatabaseURL != "" {
		db, err := database.New(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return database.NewSourceRepository(db), nil
	}

	if cfg.SupabaseURL != "" && cfg.ServiceRoleKey != "" {
		return suparest.NewClient(cfg.SupabaseURL, cfg.ServiceRoleKey), nil
	}

	return nil, ErrNotConfigured
}
