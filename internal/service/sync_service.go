//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"polyglot/internal/config"
	"polyglot/internal/model"
	"polyglot/internal/repository"
	"polyglot/pkg/logger"
)

// SyncOptions control one reconciliation.
type SyncOptions struct {
	// DryRun reports the obsolete partition without mutating the store.
	DryRun bool
	// Policy overrides the schema's sync policy for this run; empty uses the
	// schema default.
	Policy string
}

// ObsoletePair is one stored (content type, field) pair the schema no longer
// declares, with the number of affected records.
type ObsoletePair struct {
	model.FieldPair
	Records int64
}

// SyncReport is the outcome of one reconciliation.
type SyncReport struct {
	RunID         string
	DryRun        bool
	Policy        string
	Scanned       int64
	ObsoletePairs []ObsoletePair
	Obsolete      int64
	Deleted       int64
	Flagged       int64
	StartedAt     time.Time
	FinishedAt    time.Time
}

// SyncService reconciles the persisted translation set against the declared
// schema: records whose (content type, field) pair has no declaration are
// obsolete and get deleted or flagged.
type SyncService interface {
	Sync(ctx context.Context, opts SyncOptions) (*SyncReport, error)
	Runs(ctx context.Context, limit int) ([]model.SyncRun, error)
}

type syncService struct {
	schema       *config.Schema
	translations repository.TranslationRepository
	runs         repository.SyncRunRepository
}

// NewSyncService creates a new sync service.
func NewSyncService(
	schema *config.Schema,
	translations repository.TranslationRepository,
	runs repository.SyncRunRepository,
) SyncService {
	return &syncService{
		schema:       schema,
		translations: translations,
		runs:         runs,
	}
}

// Sync runs one reconciliation pass. It is idempotent: a second run against
// an unchanged schema and store finds nothing to do. Any storage failure
// aborts the run; the destructive step itself is transactional.
func (s *syncService) Sync(ctx context.Context, opts SyncOptions) (*SyncReport, error) {
	policy := opts.Policy
	if policy == "" {
		policy = s.schema.Sync.Policy
	}
	switch policy {
	case config.PolicyDelete, config.PolicyFlag:
	default:
		return nil, fmt.Errorf("%w: unknown sync policy %q", ErrInvalid, policy)
	}

	report := &SyncReport{
		RunID:     uuid.NewString(),
		DryRun:    opts.DryRun,
		Policy:    policy,
		StartedAt: time.Now().UTC(),
	}

	scanned, err := s.translations.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count translations: %w", err)
	}
	report.Scanned = scanned

	stored, err := s.translations.DistinctFieldPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect field pairs: %w", err)
	}

	declared := s.schema.FieldSet()
	var obsoletePairs []model.FieldPair
	for _, pair := range stored {
		if declared[config.FieldKey{ContentType: pair.ContentType, Field: pair.Field}] {
			continue
		}
		count, err := s.translations.CountByPair(ctx, pair)
		if err != nil {
			return nil, fmt.Errorf("count pair (%s, %s): %w", pair.ContentType, pair.Field, err)
		}
		// Pairs whose rows were all flagged on an earlier run have nothing
		// left to act on and stay out of the report.
		if count == 0 {
			continue
		}
		obsoletePairs = append(obsoletePairs, pair)
		report.ObsoletePairs = append(report.ObsoletePairs, ObsoletePair{FieldPair: pair, Records: count})
		report.Obsolete += count
	}

	if !opts.DryRun && len(obsoletePairs) > 0 {
		switch policy {
		case config.PolicyDelete:
			deleted, err := s.translations.DeleteByPairs(ctx, obsoletePairs)
			if err != nil {
				return nil, fmt.Errorf("delete obsolete translations: %w", err)
			}
			report.Deleted = deleted
		case config.PolicyFlag:
			flagged, err := s.translations.FlagByPairs(ctx, obsoletePairs)
			if err != nil {
				return nil, fmt.Errorf("flag obsolete translations: %w", err)
			}
			report.Flagged = flagged
		}
	}

	report.FinishedAt = time.Now().UTC()

	if err := s.runs.Create(ctx, model.SyncRun{
		ID:         report.RunID,
		DryRun:     report.DryRun,
		Policy:     report.Policy,
		Scanned:    report.Scanned,
		Obsolete:   report.Obsolete,
		Deleted:    report.Deleted,
		Flagged:    report.Flagged,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
	}); err != nil {
		return nil, fmt.Errorf("record sync run: %w", err)
	}

	logger.Info("translation sync finished",
		"run", report.RunID,
		"dry_run", report.DryRun,
		"policy", report.Policy,
		"scanned", report.Scanned,
		"obsolete", report.Obsolete,
		"deleted", report.Deleted,
		"flagged", report.Flagged,
	)

	return report, nil
}

// Runs lists recent reconciliations, newest first.
func (s *syncService) Runs(ctx context.Context, limit int) ([]model.SyncRun, error) {
	return s.runs.List(ctx, limit)
}
