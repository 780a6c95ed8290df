package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

// MilestoneEvent announces that a user newly crossed a healing milestone.
type MilestoneEvent struct {
	UserID          string    `json:"user_id"`
	MilestoneKey    string    `json:"milestone_key"`
	Name            string    `json:"name"`
	Message         string    `json:"message"`
	Threshold       float64   `json:"threshold"`
	OverallProgress float64   `json:"overall_progress"`
	AchievedAt      time.Time `json:"achieved_at"`
}

type MilestoneBus interface {
	Publish(ctx context.Context, ev MilestoneEvent) error
	StartForwarder(ctx context.Context, onEvent func(ev MilestoneEvent)) error
}

type milestoneBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func NewMilestoneBus(log *logger.Logger, rdb *goredis.Client, channel string) (MilestoneBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if rdb == nil {
		return nil, fmt.Errorf("redis client required")
	}
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = "milestones"
	}
	return &milestoneBus{
		log:     log.With("service", "RedisMilestoneBus"),
		rdb:     rdb,
		channel: channel,
	}, nil
}

func (b *milestoneBus) Publish(ctx context.Context, ev MilestoneEvent) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

// StartForwarder subscribes and calls onEvent for each event until ctx ends.
func (b *milestoneBus) StartForwarder(ctx context.Context, onEvent func(ev MilestoneEvent)) error {
	if onEvent == nil {
		return fmt.Errorf("onEvent callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					return
				}
				var ev MilestoneEvent
				if err := json.Unmarshal([]byte(m.Payload), &ev); err != nil {
					b.log.Warn("bad milestone payload", "error", err)
					continue
				}
				onEvent(ev)
			}
		}
	}()

	return nil
}
