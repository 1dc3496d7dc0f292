package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"coachdiag/internal/model"
)

const typeStatsKey = "diagnosis:types"

// TypeStatsCache counts how often each archetype was the primary result
type TypeStatsCache interface {
	Increment(ctx context.Context, typeID string) error
	Distribution(ctx context.Context) ([]model.TypeCount, error)
}

type typeStatsCache struct {
	client *redis.Client
}

func NewTypeStatsCache(client *redis.Client) TypeStatsCache {
	return &typeStatsCache{
		client: client,
	}
}

func (c *typeStatsCache) Increment(ctx context.Context, typeID string) error {
	return c.client.ZIncrBy(ctx, typeStatsKey, 1, typeID).Err()
}

// Distribution lists every counted type, most frequent first
func (c *typeStatsCache) Distribution(ctx context.Context) ([]model.TypeCount, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, typeStatsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]model.TypeCount, len(results))
	for i, z := range results {
		counts[i] = model.TypeCount{
			TypeID: z.Member.(string),
			Count:  int64(z.Score),
		}
	}
	return counts, nil
}
