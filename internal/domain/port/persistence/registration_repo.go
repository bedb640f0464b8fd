package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// RegistrationRepository defines the methods to interact with registrations.
// At most one non-cancelled registration exists per (game, player).
type RegistrationRepository interface {
	// GetActive returns the non-cancelled registration of a player for a game,
	// whether it is a live hold, a lapsed hold or a confirmed seat
	//
	// Possible errors:
	// - ErrRegistrationNotFound: If the player has no non-cancelled registration
	// - ErrDatabaseConnection: If database connection fails
	GetActive(ctx context.Context, gameID, playerID uint64) (*entity.Registration, error)

	// GetByID retrieves a registration by its ID
	//
	// Possible errors:
	// - ErrRegistrationNotFound: If registration doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Registration, error)

	// Create stores a new registration
	//
	// Possible errors:
	// - ErrConcurrentUpdate: If another non-cancelled registration for the pair appeared concurrently
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, registration *entity.Registration) error

	// Update persists status, payment status and expiry changes
	//
	// Possible errors:
	// - ErrRegistrationNotFound: If registration doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, registration *entity.Registration) error

	// DeletePending removes a pending hold of the player. When reservationID is
	// non-empty only the hold with that ID is removed. Returns the ID of the
	// deleted hold, or an empty string when there was nothing to delete.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	DeletePending(ctx context.Context, gameID, playerID uint64, reservationID string) (string, error)

	// CountReserved returns the number of confirmed registrations and of pending
	// holds that have not expired at now
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CountReserved(ctx context.Context, gameID uint64, now time.Time) (confirmed int, pending int, err error)

	// DeleteExpiredPending removes up to limit pending holds that expired before
	// the given instant and returns how many were removed
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	DeleteExpiredPending(ctx context.Context, before time.Time, limit int) (int64, error)
}
