package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/neurohealing-backend/internal/modules/healing"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

// MetricsCache stores aggregated healing metrics per user and factor set.
type MetricsCache interface {
	// Get reports false on a miss.
	Get(ctx context.Context, userID, factorKey string) (*healing.Metrics, bool, error)
	Set(ctx context.Context, userID, factorKey string, m *healing.Metrics) error
	// Invalidate drops every cached entry for userID.
	Invalidate(ctx context.Context, userID string) error
}

type metricsCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewMetricsCache(log *logger.Logger, rdb *goredis.Client, ttl time.Duration) MetricsCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &metricsCache{log: log.With("service", "RedisMetricsCache"), rdb: rdb, ttl: ttl}
}

func userKey(userID string) string {
	return "healing:metrics:" + userID
}

func (c *metricsCache) Get(ctx context.Context, userID, factorKey string) (*healing.Metrics, bool, error) {
	raw, err := c.rdb.HGet(ctx, userKey(userID), factorKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("metrics cache get: %w", err)
	}
	var m healing.Metrics
	if err := json.Unmarshal(raw, &m); err != nil {
		c.log.Warn("dropping undecodable cached metrics", "error", err)
		_ = c.rdb.HDel(ctx, userKey(userID), factorKey).Err()
		return nil, false, nil
	}
	return &m, true, nil
}

func (c *metricsCache) Set(ctx context.Context, userID, factorKey string, m *healing.Metrics) error {
	if m == nil {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	key := userKey(userID)
	_, err = c.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.HSet(ctx, key, factorKey, raw)
		p.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("metrics cache set: %w", err)
	}
	return nil
}

func (c *metricsCache) Invalidate(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, userKey(userID)).Err()
}
