package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pageza/cookbook/backend/config"
	"github.com/redis/go-redis/v9"
)

const redisConnectTimeout = 5 * time.Second

// ErrRedisDisabled is returned when a Redis check runs without a client.
var ErrRedisDisabled = errors.New("redis is not configured")

// RedisOptions builds client options. REDIS_URL takes precedence over host and port.
func RedisOptions(cfg *config.Config) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

// NewRedisClient connects to Redis and pings it once. The client is closed
// again when the ping fails.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opts, err := RedisOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()
	if err := RedisHealthCheck(ctx, client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	log.Printf("[Redis] connected to %s (db %d)", opts.Addr, opts.DB)
	return client, nil
}

// RedisHealthCheck pings Redis.
func RedisHealthCheck(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return ErrRedisDisabled
	}
	return client.Ping(ctx).Err()
}
