package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/logging"
	"notekeeper/internal/models"
)

func TestInitDatabase_MigratesAndWires(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "notes.db")

	repos, err := InitDatabase(ctx, dsn, logging.NewDiscard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	require.True(t, repos.Credentials.Register(ctx, "alice", "pw"))
	require.True(t, repos.Notes.Save(ctx, "alice", models.Note{ID: "n1", Title: "t"}))
	assert.Len(t, repos.Notes.List(ctx, "alice"), 1)
}

func TestInitDatabase_DataSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "notes.db")

	repos, err := InitDatabase(ctx, dsn, logging.NewDiscard())
	require.NoError(t, err)
	require.True(t, repos.Credentials.Register(ctx, "alice", "pw"))
	require.True(t, repos.Notes.Save(ctx, "alice", models.Note{ID: "n1", Title: "t"}))
	require.NoError(t, repos.Credentials.SetSession(ctx, "alice"))
	require.NoError(t, repos.Close())

	// reopen: migrations are idempotent and data is durable
	repos, err = InitDatabase(ctx, dsn, logging.NewDiscard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	assert.True(t, repos.Credentials.Verify(ctx, "alice", "pw"))
	assert.Equal(t, "alice", repos.Credentials.GetSession(ctx))
	assert.Len(t, repos.Notes.List(ctx, "alice"), 1)
}
