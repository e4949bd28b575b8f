package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"polyglot/internal/repository"
	"polyglot/internal/repository/testutil"
)

func TestSettingsRepository_GetSet(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "auth.password_hash")
	require.True(t, errors.Is(err, sql.ErrNoRows))

	require.NoError(t, repo.Set(ctx, "auth.password_hash", "hash-1"))

	value, err := repo.Get(ctx, "auth.password_hash")
	require.NoError(t, err)
	require.Equal(t, "hash-1", value)

	require.NoError(t, repo.Set(ctx, "auth.password_hash", "hash-2"))
	value, err = repo.Get(ctx, "auth.password_hash")
	require.NoError(t, err)
	require.Equal(t, "hash-2", value)
}
