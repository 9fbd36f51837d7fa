package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// SaveLastSync records when the roster was last imported and how many rows it added.
func (r *Repository) SaveLastSync(ctx context.Context, syncedAt time.Time, imported int) error {
	defer r.observe("save_last_sync")()

	query := `
		INSERT INTO roster_sync (id, last_synced_at, imported)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET last_synced_at = $1, imported = $2, updated_at = CURRENT_TIMESTAMP;`

	_, err := r.db.Exec(ctx, query, syncedAt, imported)
	if err != nil {
		return fmt.Errorf("failed to execute insert query: %w", err)
	}

	return nil
}

// GetLastSync returns the time of the last roster import, or ErrNotFound before the first one.
func (r *Repository) GetLastSync(ctx context.Context) (time.Time, error) {
	defer r.observe("get_last_sync")()

	query := "SELECT last_synced_at FROM roster_sync WHERE id = 1"

	var lastSync time.Time

	err := r.db.QueryRow(ctx, query).Scan(&lastSync)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time from table roster_sync: %w", err)
	}

	return lastSync, nil
}
