package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shenikar/geo_sector_dispatch/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepository(t *testing.T, path string) service.SnapshotRepository {
	t.Helper()
	db, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteSnapshotRepository(db)
}

func TestSQLiteSnapshotRepository_GetMissing(t *testing.T) {
	repo := newTestSQLiteRepository(t, ":memory:")

	_, err := repo.Get(context.Background(), "notifications")

	assert.ErrorIs(t, err, service.ErrSnapshotNotFound)
}

func TestSQLiteSnapshotRepository_SetOverwrites(t *testing.T) {
	repo := newTestSQLiteRepository(t, ":memory:")
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "notifications", []byte(`[{"id":"a"}]`)))
	require.NoError(t, repo.Set(ctx, "notifications", []byte(`[]`)))
	require.NoError(t, repo.Set(ctx, "other", []byte(`[{"id":"b"}]`)))

	blob, err := repo.Get(ctx, "notifications")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), blob)

	blob, err = repo.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"b"}]`), blob)
}

func TestSQLiteSnapshotRepository_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	ctx := context.Background()

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteSnapshotRepository(db).Set(ctx, "notifications", []byte(`[1]`)))
	require.NoError(t, db.Close())

	repo := newTestSQLiteRepository(t, path)
	blob, err := repo.Get(ctx, "notifications")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), blob)
}
