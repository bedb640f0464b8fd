package game

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
)

// Service creates and reads games
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.GameUseCase = (*Service)(nil)

// NewService creates a new game service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateGame validates and stores a new game
func (s *Service) CreateGame(ctx context.Context, req usecase.CreateGameRequest) (*entity.Game, error) {
	game, err := entity.NewGame(req.HostID, req.Title, req.MaxPlayers, req.Price, req.Currency, req.Datetime, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetGameRepository(ctx).Create(ctx, game); err != nil {
		s.logger.Error("Failed to create game", map[string]any{
			"hostId": req.HostID,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Game created", map[string]any{
		"gameId":     game.ID,
		"hostId":     game.HostID,
		"maxPlayers": game.MaxPlayers,
		"price":      game.Price,
		"currency":   game.Currency,
	})
	return game, nil
}

// GetGame returns a game by ID
func (s *Service) GetGame(ctx context.Context, gameID uint64) (*entity.Game, error) {
	if gameID == 0 {
		return nil, errs.ErrInvalidGameID
	}
	return s.uow.GetGameRepository(ctx).GetByID(ctx, gameID)
}
