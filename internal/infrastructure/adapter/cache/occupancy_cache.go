package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

const occupancyKeyPrefix = "game-booking:occupancy:"

// RedisOccupancyCache stores occupancy snapshots as JSON strings with a TTL
type RedisOccupancyCache struct {
	client *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

var _ cache.OccupancyCache = (*RedisOccupancyCache)(nil)

// NewRedisOccupancyCache creates a new RedisOccupancyCache
func NewRedisOccupancyCache(client *redis.Client, ttl time.Duration, logger coreport.Logger) *RedisOccupancyCache {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &RedisOccupancyCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func occupancyKey(gameID uint64) string {
	return fmt.Sprintf("%s%d", occupancyKeyPrefix, gameID)
}

// Get returns the cached snapshot of a game
func (c *RedisOccupancyCache) Get(ctx context.Context, gameID uint64) (*entity.Occupancy, bool, error) {
	raw, err := c.client.Get(ctx, occupancyKey(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading occupancy of game %d: %w", gameID, err)
	}

	var occupancy entity.Occupancy
	if err := json.Unmarshal(raw, &occupancy); err != nil {
		// A value we cannot read is treated as a miss and dropped
		c.logger.Warn("Discarding malformed occupancy entry", map[string]any{
			"game_id": gameID,
			"error":   err.Error(),
		})
		_ = c.client.Del(ctx, occupancyKey(gameID)).Err()
		return nil, false, nil
	}
	return &occupancy, true, nil
}

// Set stores a snapshot for the configured TTL
func (c *RedisOccupancyCache) Set(ctx context.Context, occupancy entity.Occupancy) error {
	raw, err := json.Marshal(occupancy)
	if err != nil {
		return fmt.Errorf("encoding occupancy of game %d: %w", occupancy.GameID, err)
	}
	if err := c.client.Set(ctx, occupancyKey(occupancy.GameID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing occupancy of game %d: %w", occupancy.GameID, err)
	}
	return nil
}

// Invalidate drops the snapshot of a game
func (c *RedisOccupancyCache) Invalidate(ctx context.Context, gameID uint64) error {
	if err := c.client.Del(ctx, occupancyKey(gameID)).Err(); err != nil {
		return fmt.Errorf("invalidating occupancy of game %d: %w", gameID, err)
	}
	return nil
}
