// Package leaderboard caches the top users by reputation in a Redis
// sorted set so the hot read path stays off Postgres.
package leaderboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// Key is the sorted set holding the cached leaderboard.
const Key = "reputation:leaderboard"

// DefaultSize is used when the configured leaderboard size is missing.
const DefaultSize = 100

// Entry is one leaderboard row.
type Entry struct {
	UserID     uint64 `json:"userId"`
	Username   string `json:"username"`
	Reputation int64  `json:"reputation"`
}

// UserSource provides the ranked users that seed the cache.
type UserSource interface {
	TopByReputation(ctx context.Context, limit int) ([]*types.User, error)
}

// Cache maintains the Redis-backed leaderboard.
type Cache struct {
	client rueidis.Client
	users  UserSource
	size   int
	logger *zap.Logger
}

// NewCache creates a new leaderboard cache.
func NewCache(client rueidis.Client, users UserSource, size int, logger *zap.Logger) *Cache {
	if size <= 0 {
		size = DefaultSize
	}

	return &Cache{
		client: client,
		users:  users,
		size:   size,
		logger: logger.Named("leaderboard"),
	}
}

// Refresh rebuilds the sorted set from the database.
func (c *Cache) Refresh(ctx context.Context) error {
	users, err := c.users.TopByReputation(ctx, c.size)
	if err != nil {
		return fmt.Errorf("failed to load top users: %w", err)
	}

	delCmd := c.client.B().Del().Key(Key).Build()
	if len(users) == 0 {
		return c.client.Do(ctx, delCmd).Error()
	}

	zadd := c.client.B().Zadd().Key(Key).ScoreMember()
	for _, user := range users {
		zadd = zadd.ScoreMember(float64(user.Reputation), member(user.ID, user.Username))
	}

	for _, resp := range c.client.DoMulti(ctx, delCmd, zadd.Build()) {
		if err := resp.Error(); err != nil {
			return fmt.Errorf("failed to rebuild leaderboard: %w", err)
		}
	}

	c.logger.Debug("Refreshed leaderboard", zap.Int("entries", len(users)))

	return nil
}

// Top returns the highest-reputation entries, best first. An empty cache
// is refreshed from the database before reading.
func (c *Cache) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > c.size {
		limit = c.size
	}

	entries, err := c.read(ctx, limit)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		if err := c.Refresh(ctx); err != nil {
			return nil, err
		}

		return c.read(ctx, limit)
	}

	return entries, nil
}

// read fetches entries from the sorted set.
func (c *Cache) read(ctx context.Context, limit int) ([]Entry, error) {
	scores, err := c.client.Do(ctx, c.client.B().Zrevrange().
		Key(Key).
		Start(0).
		Stop(int64(limit-1)).
		Withscores().
		Build()).AsZScores()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]Entry, 0, len(scores))

	for _, score := range scores {
		idPart, username, ok := strings.Cut(score.Member, ":")
		if !ok {
			continue
		}

		userID, err := strconv.ParseUint(idPart, 10, 64)
		if err != nil {
			continue
		}

		entries = append(entries, Entry{
			UserID:     userID,
			Username:   username,
			Reputation: int64(score.Score),
		})
	}

	return entries, nil
}

// member encodes a user as a sorted set member.
func member(userID uint64, username string) string {
	return fmt.Sprintf("%d:%s", userID, username)
}
