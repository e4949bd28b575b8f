//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"

	"polyglot/internal/model"
)

// SyncRunRepository defines the interface for reconciliation audit storage.
type SyncRunRepository interface {
	Create(ctx context.Context, run model.SyncRun) error
	List(ctx context.Context, limit int) ([]model.SyncRun, error)
}

type syncRunRepository struct {
	db *sql.DB
}

// NewSyncRunRepository creates a new sync run repository.
func NewSyncRunRepository(db *sql.DB) SyncRunRepository {
	return &syncRunRepository{db: db}
}

// Create persists one reconciliation record.
func (r *syncRunRepository) Create(ctx context.Context, run model.SyncRun) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sync_runs (id, dry_run, policy, scanned, obsolete, deleted, flagged, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, boolToInt(run.DryRun), run.Policy, run.Scanned, run.Obsolete, run.Deleted, run.Flagged,
		formatTime(run.StartedAt), formatTime(run.FinishedAt))
	return err
}

// List retrieves the most recent runs, newest first.
func (r *syncRunRepository) List(ctx context.Context, limit int) ([]model.SyncRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dry_run, policy, scanned, obsolete, deleted, flagged, started_at, finished_at
		FROM sync_runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.SyncRun
	for rows.Next() {
		var run model.SyncRun
		var dryRun int
		var startedAt, finishedAt string
		if err := rows.Scan(&run.ID, &dryRun, &run.Policy, &run.Scanned, &run.Obsolete, &run.Deleted, &run.Flagged, &startedAt, &finishedAt); err != nil {
			return nil, err
		}
		run.DryRun = dryRun != 0
		run.StartedAt, _ = parseTime(startedAt)
		run.FinishedAt, _ = parseTime(finishedAt)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
