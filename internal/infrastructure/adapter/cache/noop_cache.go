package cache

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/cache"
)

// NoopOccupancyCache never holds anything, every read is a miss.
// It is used when Redis is disabled.
type NoopOccupancyCache struct{}

var _ cache.OccupancyCache = NoopOccupancyCache{}

// NewNoopOccupancyCache creates a cache that stores nothing
func NewNoopOccupancyCache() NoopOccupancyCache {
	return NoopOccupancyCache{}
}

func (NoopOccupancyCache) Get(context.Context, uint64) (*entity.Occupancy, bool, error) {
	return nil, false, nil
}

func (NoopOccupancyCache) Set(context.Context, entity.Occupancy) error { return nil }

func (NoopOccupancyCache) Invalidate(context.Context, uint64) error { return nil }
