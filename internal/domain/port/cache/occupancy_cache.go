package cache

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// OccupancyCache keeps short-lived occupancy snapshots for read endpoints.
// It is never consulted when deciding whether a seat can be taken.
type OccupancyCache interface {
	// Get returns the cached snapshot and whether one was found
	Get(ctx context.Context, gameID uint64) (*entity.Occupancy, bool, error)

	// Set stores a snapshot for the configured TTL
	Set(ctx context.Context, occupancy entity.Occupancy) error

	// Invalidate drops the snapshot after a committed change to the game
	Invalidate(ctx context.Context, gameID uint64) error
}
