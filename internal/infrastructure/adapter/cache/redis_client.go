package cache

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// ClientConfig holds the connection settings of the Redis client
type ClientConfig struct {
	Addr        string
	Password    string
	DB          int
	PingTimeout time.Duration
}

// NewRedisClient creates a client and checks the server answers a PING
func NewRedisClient(ctx context.Context, cfg ClientConfig, logger coreport.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		logger.Error("Redis ping failed", map[string]any{
			"addr":  cfg.Addr,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}

	logger.Info("Connected to Redis", map[string]any{
		"addr": cfg.Addr,
		"db":   cfg.DB,
	})
	return client, nil
}
