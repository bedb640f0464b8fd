package persistence

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// GameRepository defines the methods needed to read and lock games
type GameRepository interface {
	// Create stores a new game and assigns its ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, game *entity.Game) error

	// GetByID retrieves a game without locking it
	//
	// Possible errors:
	// - ErrGameNotFound: If game with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Game, error)

	// GetForUpdate retrieves a game and takes a row lock on it for the rest of
	// the transaction. Every capacity decision for the game goes through this
	// lock so that concurrent reservations serialize.
	//
	// Possible errors:
	// - ErrGameNotFound: If game with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetForUpdate(ctx context.Context, id uint64) (*entity.Game, error)

	// AdjustPlayersCount moves the cached confirmed-player counter by delta,
	// never letting it drop below zero
	//
	// Possible errors:
	// - ErrGameNotFound: If game with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	AdjustPlayersCount(ctx context.Context, id uint64, delta int) error
}
