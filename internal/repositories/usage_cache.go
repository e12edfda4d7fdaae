package repositories

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"lionlease/internal/models"
)

const featureLeaderboardKey = "smart_filters:feature_adds"

// UsageCache keeps a live feature-popularity leaderboard in a Redis
// sorted set so the analytics endpoint does not hit MySQL on every
// request. The SQL table stays the source of truth; callers fall back
// to it when Redis is unavailable.
type UsageCache struct {
	rdb *redis.Client
}

func NewUsageCache(rdb *redis.Client) *UsageCache {
	return &UsageCache{rdb: rdb}
}

// BumpFeature increments the feature's score for an "added" event.
func (c *UsageCache) BumpFeature(ctx context.Context, feature string) error {
	if c == nil || c.rdb == nil {
		return redis.ErrClosed
	}
	return c.rdb.ZIncrBy(ctx, featureLeaderboardKey, 1, feature).Err()
}

// TopFeatures reads the leaderboard, highest score first.
func (c *UsageCache) TopFeatures(ctx context.Context, limit int) ([]models.FeatureCount, error) {
	if c == nil || c.rdb == nil {
		return nil, redis.ErrClosed
	}
	members, err := c.rdb.ZRevRangeWithScores(ctx, featureLeaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read feature leaderboard: %w", err)
	}

	top := make([]models.FeatureCount, 0, len(members))
	for _, m := range members {
		feature, ok := m.Member.(string)
		if !ok {
			continue
		}
		top = append(top, models.FeatureCount{Feature: feature, Count: int(m.Score)})
	}
	return top, nil
}
