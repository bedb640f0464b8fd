package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// ReservationResult describes the hold handed back by ReserveSeat.
// For free games the registration is confirmed directly and ExpiresAt is nil.
type ReservationResult struct {
	ReservationID string
	ExpiresAt     *time.Time
	Registration  *entity.Registration
	Reused        bool // an existing live hold was returned
}

// ReleaseResult reports whether a pending hold was actually removed
type ReleaseResult struct {
	Released bool
}

// ReservationUseCase creates, renews and releases time-boxed seat holds
type ReservationUseCase interface {
	// ReserveSeat holds one seat of the game for the player
	ReserveSeat(ctx context.Context, gameID, playerID uint64) (*ReservationResult, error)

	// ReleaseReservation drops the player's pending hold. An empty reservationID
	// releases whichever hold the player owns. Missing holds are not an error.
	ReleaseReservation(ctx context.Context, gameID, playerID uint64, reservationID string) (*ReleaseResult, error)
}

// SweepUseCase physically removes long-expired holds
type SweepUseCase interface {
	SweepExpired(ctx context.Context) (int64, error)
}
