package capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/persistence"
)

// Ledger answers how many seats of a game are taken. Called with a
// transactional context after the game row has been locked, its answer stays
// valid until the transaction ends.
type Ledger struct {
	uow persistence.UnitOfWork
}

// NewLedger creates a new capacity ledger
func NewLedger(uow persistence.UnitOfWork) *Ledger {
	return &Ledger{uow: uow}
}

// ReservedCount counts confirmed registrations plus pending holds still live at now
func (l *Ledger) ReservedCount(ctx context.Context, game *entity.Game, now time.Time) (entity.Occupancy, error) {
	confirmed, pending, err := l.uow.GetRegistrationRepository(ctx).CountReserved(ctx, game.ID, now)
	if err != nil {
		return entity.Occupancy{}, fmt.Errorf("failed to count reserved seats: %w", err)
	}
	return entity.NewOccupancy(game.ID, game.MaxPlayers, confirmed, pending), nil
}

// EnsureHeadroom fails with a CapacityError when no seat is left at now
func (l *Ledger) EnsureHeadroom(ctx context.Context, game *entity.Game, now time.Time) (entity.Occupancy, error) {
	occupancy, err := l.ReservedCount(ctx, game, now)
	if err != nil {
		return occupancy, err
	}
	if !occupancy.HasHeadroom() {
		return occupancy, errs.NewCapacityError(game.ID, occupancy.ConfirmedCount, occupancy.PendingCount, game.MaxPlayers)
	}
	return occupancy, nil
}

// RecordConfirmed bumps the cached confirmed-player counter
func (l *Ledger) RecordConfirmed(ctx context.Context, gameID uint64) error {
	return l.uow.GetGameRepository(ctx).AdjustPlayersCount(ctx, gameID, 1)
}

// RecordCancelled lowers the cached confirmed-player counter, floored at zero
func (l *Ledger) RecordCancelled(ctx context.Context, gameID uint64) error {
	return l.uow.GetGameRepository(ctx).AdjustPlayersCount(ctx, gameID, -1)
}
