package capacity

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/unitofwork"
)

// OccupancyService serves occupancy snapshots to read endpoints, going through
// a short-lived cache first
type OccupancyService struct {
	runner       *unitofwork.Runner
	uow          persistence.UnitOfWork
	ledger       *Ledger
	cache        cache.OccupancyCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.OccupancyUseCase = (*OccupancyService)(nil)

// NewOccupancyService creates a new OccupancyService
func NewOccupancyService(
	runner *unitofwork.Runner,
	uow persistence.UnitOfWork,
	ledger *Ledger,
	occupancyCache cache.OccupancyCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *OccupancyService {
	return &OccupancyService{
		runner:       runner,
		uow:          uow,
		ledger:       ledger,
		cache:        occupancyCache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetOccupancy returns confirmed and live pending counts of a game
func (s *OccupancyService) GetOccupancy(ctx context.Context, gameID uint64) (*entity.Occupancy, error) {
	if gameID == 0 {
		return nil, errs.ErrInvalidGameID
	}

	if cached, found, err := s.cache.Get(ctx, gameID); err != nil {
		s.logger.Warn("Occupancy cache read failed", map[string]any{
			"gameId": gameID,
			"error":  err.Error(),
		})
	} else if found {
		return cached, nil
	}

	var occupancy entity.Occupancy
	err := s.runner.Do(ctx, "get_occupancy", func(txCtx context.Context) error {
		game, err := s.uow.GetGameRepository(txCtx).GetByID(txCtx, gameID)
		if err != nil {
			return err
		}
		occupancy, err = s.ledger.ReservedCount(txCtx, game, s.timeProvider.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, occupancy); err != nil {
		s.logger.Warn("Occupancy cache write failed", map[string]any{
			"gameId": gameID,
			"error":  err.Error(),
		})
	}

	return &occupancy, nil
}
