package app

import (
	"context"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/neurohealing-backend/internal/clients/redis"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

type Clients struct {
	Redis        *goredis.Client
	MetricsCache redis.MetricsCache
	MilestoneBus redis.MilestoneBus
}

// wireClients leaves every client nil when REDIS_ADDR is unset.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		log.Warn("REDIS_ADDR not set; metrics cache and milestone bus disabled")
		return Clients{}, nil
	}
	rdb, err := redis.NewClient(ctx, cfg.RedisAddr)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis: %w", err)
	}
	bus, err := redis.NewMilestoneBus(log, rdb, cfg.RedisChannel)
	if err != nil {
		_ = rdb.Close()
		return Clients{}, fmt.Errorf("init milestone bus: %w", err)
	}
	return Clients{
		Redis:        rdb,
		MetricsCache: redis.NewMetricsCache(log, rdb, cfg.MetricsCacheTTL),
		MilestoneBus: bus,
	}, nil
}

func (c *Clients) Close() {
	if c == nil || c.Redis == nil {
		return
	}
	_ = c.Redis.Close()
}
