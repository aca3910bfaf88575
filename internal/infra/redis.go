package infra

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/fleetcases/internal/config"
)

// Redis connects to redis, nil client is returned if redis address is not configured
func Redis(ctx context.Context, cfg config.RedisCfg) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("didn't get response from redis after sending ping request - %w", err)
	}
	return client, nil
}
