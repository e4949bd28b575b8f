package model

import "time"

// SyncRun records one reconciliation of the translation store against the
// declared schema.
type SyncRun struct {
	ID         string // UUID
	DryRun     bool
	Policy     string
	Scanned    int64
	Obsolete   int64
	Deleted    int64
	Flagged    int64
	StartedAt  time.Time
	FinishedAt time.Time
}
