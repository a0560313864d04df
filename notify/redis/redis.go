package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/finch-technologies/media-publisher/adapters"
	"github.com/finch-technologies/media-publisher/notify"
	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Channel string `env:"REDIS_CHANNEL"`
	Redis   adapters.RedisConfig
}

type publishAPI interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisNotifier publishes each event as JSON on a Redis pub/sub channel.
// Subscribers that are not connected when the event is sent never see it.
type RedisNotifier struct {
	rdb     publishAPI
	channel string
}

func New(cfg RedisConfig) (*RedisNotifier, error) {
	if cfg.Channel == "" {
		return nil, errors.New("redis channel is required")
	}

	return NewWithClient(adapters.GetRedisClient(cfg.Redis), cfg.Channel), nil
}

func NewWithClient(rdb publishAPI, channel string) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context, event notify.Event) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal publish event: %w", err)
	}

	if err := n.rdb.Publish(ctx, n.channel, string(bytes)).Err(); err != nil {
		return fmt.Errorf("failed to publish event on %s: %w", n.channel, err)
	}

	return nil
}
