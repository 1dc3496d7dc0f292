package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"coachdiag/internal/model"
)

// ResultCache keeps composed results of completed sessions. A completed
// session never changes, so entries are only ever written once.
type ResultCache interface {
	Set(ctx context.Context, result *model.DiagnosisResult) error
	Get(ctx context.Context, sessionID string) (*model.DiagnosisResult, error)
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	return &resultCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *resultCache) key(sessionID string) string {
	return fmt.Sprintf("diagnosis:result:%s", sessionID)
}

func (c *resultCache) Set(ctx context.Context, result *model.DiagnosisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(result.SessionID), data, c.ttl).Err()
}

// Get returns nil, nil on a miss
func (c *resultCache) Get(ctx context.Context, sessionID string) (*model.DiagnosisResult, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result model.DiagnosisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
