package leaderboard_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/leaderboard"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUserSource serves a fixed ranking.
type fakeUserSource struct {
	users []*types.User
}

func (f *fakeUserSource) TopByReputation(_ context.Context, limit int) ([]*types.User, error) {
	if limit > len(f.users) {
		limit = len(f.users)
	}

	return f.users[:limit], nil
}

func setupTest(t *testing.T, users []*types.User) (*leaderboard.Cache, func()) {
	t.Helper()
	// Start miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	// Create Redis client
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	// Create test logger
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	cache := leaderboard.NewCache(client, &fakeUserSource{users: users}, 10, logger)

	cleanup := func() {
		mr.Close()
		client.Close()
		logger.Sync()
	}

	return cache, cleanup
}

func TestRefreshAndTop(t *testing.T) {
	t.Parallel()

	cache, cleanup := setupTest(t, []*types.User{
		{ID: 1, Username: "alice", Reputation: 2100},
		{ID: 2, Username: "bob", Reputation: 540},
		{ID: 3, Username: "carol", Reputation: 15},
	})
	defer cleanup()

	ctx := t.Context()

	err := cache.Refresh(ctx)
	require.NoError(t, err)

	entries, err := cache.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Highest reputation first
	assert.Equal(t, uint64(1), entries[0].UserID)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, int64(2100), entries[0].Reputation)
	assert.Equal(t, uint64(3), entries[2].UserID)
}

func TestTopPopulatesEmptyCache(t *testing.T) {
	t.Parallel()

	cache, cleanup := setupTest(t, []*types.User{
		{ID: 7, Username: "dave", Reputation: 125},
	})
	defer cleanup()

	// No Refresh call beforehand; Top should rebuild from the source
	entries, err := cache.Top(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(7), entries[0].UserID)
	assert.Equal(t, int64(125), entries[0].Reputation)
}

func TestTopLimit(t *testing.T) {
	t.Parallel()

	cache, cleanup := setupTest(t, []*types.User{
		{ID: 1, Username: "alice", Reputation: 500},
		{ID: 2, Username: "bob", Reputation: 400},
		{ID: 3, Username: "carol", Reputation: 300},
	})
	defer cleanup()

	ctx := t.Context()

	err := cache.Refresh(ctx)
	require.NoError(t, err)

	entries, err := cache.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint64(1), entries[0].UserID)
	assert.Equal(t, uint64(2), entries[1].UserID)
}

func TestRefreshReplacesStaleEntries(t *testing.T) {
	t.Parallel()

	source := &fakeUserSource{users: []*types.User{
		{ID: 1, Username: "alice", Reputation: 100},
		{ID: 2, Username: "bob", Reputation: 50},
	}}

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	defer client.Close()

	cache := leaderboard.NewCache(client, source, 10, zap.NewNop())

	ctx := t.Context()
	require.NoError(t, cache.Refresh(ctx))

	// Bob overtakes Alice; Alice drops out entirely
	source.users = []*types.User{
		{ID: 2, Username: "bob", Reputation: 300},
	}
	require.NoError(t, cache.Refresh(ctx))

	entries, err := cache.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(2), entries[0].UserID)
	assert.Equal(t, int64(300), entries[0].Reputation)
}
