package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"polyglot/internal/model"
	"polyglot/internal/repository"
	"polyglot/internal/repository/testutil"
)

func TestSyncRunRepository_CreateAndList(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewSyncRunRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		run := model.SyncRun{
			ID:         uuid.NewString(),
			DryRun:     i == 0,
			Policy:     "delete",
			Scanned:    int64(10 * i),
			Obsolete:   int64(i),
			Deleted:    int64(i),
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
		}
		require.NoError(t, repo.Create(ctx, run))
	}

	runs, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// Newest first
	require.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
	require.Equal(t, "delete", runs[0].Policy)
}

func TestSyncRunRepository_List_DefaultLimit(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewSyncRunRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, model.SyncRun{
		ID:         uuid.NewString(),
		Policy:     "flag",
		StartedAt:  time.Now().UTC(),
		FinishedAt: time.Now().UTC(),
	}))

	runs, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "flag", runs[0].Policy)
	require.False(t, runs[0].DryRun)
}
