// ABOUTME: Redis client construction honoring sentinel-based master discovery
// ABOUTME: Used for the token cache, routing directory, presence keys, and frame bus

package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/myluster/TinyIM/internal/config"
)

// NewRedisClient builds a client for the configured deployment. With a
// sentinel section present the client discovers the master through the
// sentinels and follows failovers; otherwise it dials the address directly.
// MaxRetries is set to 1 so transient hiccups get a single retry before
// errors surface to callers.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Sentinel.Enabled() {
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    cfg.Sentinel.MasterName,
			SentinelAddrs: []string{cfg.Sentinel.Addr()},
			Password:      cfg.Password,
			PoolSize:      cfg.PoolSize,
			MaxRetries:    1,
		})
	}
	return redis.NewClient(&redis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		PoolSize:   cfg.PoolSize,
		MaxRetries: 1,
	})
}

// PingRedis verifies the connection before the caller starts serving
func PingRedis(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}
	return nil
}
