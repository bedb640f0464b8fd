package usecase

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// OccupancyUseCase answers read-side occupancy queries
type OccupancyUseCase interface {
	GetOccupancy(ctx context.Context, gameID uint64) (*entity.Occupancy, error)
}
