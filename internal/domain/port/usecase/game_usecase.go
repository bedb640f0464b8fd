package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// CreateGameRequest holds the fields needed to publish a game
type CreateGameRequest struct {
	HostID     uint64
	Title      string
	MaxPlayers int
	Price      int64
	Currency   string
	Datetime   time.Time
}

// GameUseCase covers the minimal game management needed to book against games
type GameUseCase interface {
	CreateGame(ctx context.Context, req CreateGameRequest) (*entity.Game, error)
	GetGame(ctx context.Context, gameID uint64) (*entity.Game, error)
}
