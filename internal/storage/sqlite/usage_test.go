package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *UsageRepo {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUsageRepo(db)
}

func TestUsageRepo_TopCommands(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, cmd := range []string{"echo", "roll", "echo", "help", "echo", "roll"} {
		require.NoError(t, repo.Record(ctx, cmd, "chat-1", "ada"))
	}

	counts, err := repo.TopCommands(ctx, 10)
	require.NoError(t, err)
	require.Len(t, counts, 3)

	assert.Equal(t, UsageCount{Command: "echo", Count: 3}, counts[0])
	assert.Equal(t, UsageCount{Command: "roll", Count: 2}, counts[1])
	assert.Equal(t, UsageCount{Command: "help", Count: 1}, counts[2])
}

func TestUsageRepo_TopCommandsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, cmd := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Record(ctx, cmd, "chat-1", "ada"))
	}

	counts, err := repo.TopCommands(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, counts, 2)
}

func TestUsageRepo_Empty(t *testing.T) {
	repo := newTestRepo(t)

	counts, err := repo.TopCommands(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
