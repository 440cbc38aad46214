package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client for the catalog cache.
//
// Supported env vars:
//   - REDIS_HOST (required by the caller to opt in)
//   - REDIS_PORT (default: 6379)
//   - REDIS_PASSWORD (optional)
func ConnectRedis(host string) (*redis.Client, error) {
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("[catalog][cache] redis connection established addr=%s:%s", host, port)
	return rdb, nil
}
