package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appconfig "github.com/fatah2004/KechEx/internal/config"
)

// ConnectRedis creates a Redis client from config and verifies the
// connection with a ping.
func ConnectRedis(cfg *appconfig.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}
