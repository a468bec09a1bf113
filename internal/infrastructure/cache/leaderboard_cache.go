package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"taskrewards/internal/domain"
)

// LeaderboardCache keeps short-lived leaderboard snapshots so the ranking
// query does not hit postgres on every request.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(client *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: 30 * time.Second}
}

func (c *LeaderboardCache) key(timeframe domain.Timeframe, limit int) string {
	return fmt.Sprintf("leaderboard:%s:%d", timeframe, limit)
}

func (c *LeaderboardCache) Get(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.LeaderboardEntry, bool) {
	raw, err := c.client.Get(ctx, c.key(timeframe, limit)).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *LeaderboardCache) Set(ctx context.Context, timeframe domain.Timeframe, limit int, entries []domain.LeaderboardEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	// Best effort; a cache miss on the next request is the worst case.
	c.client.Set(ctx, c.key(timeframe, limit), raw, c.ttl)
}
