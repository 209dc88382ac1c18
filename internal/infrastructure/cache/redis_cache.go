package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meditrack_pro/internal/config"
	"meditrack_pro/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "meditrack:"

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// RedisSummaryCache keeps generated AI texts in Redis, shared across
// instances.
type RedisSummaryCache struct {
	client *redis.Client
}

var _ interfaces.ISummaryCache = (*RedisSummaryCache)(nil)

func NewRedisSummaryCache(client *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{client: client}
}

func (c *RedisSummaryCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get from cache: %w", err)
	}
	return v, true, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in cache: %w", err)
	}
	return nil
}
