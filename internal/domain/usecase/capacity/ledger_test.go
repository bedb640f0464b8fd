package capacity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	persistencemocks "github.com/amirhossein-jamali/game-booking/mocks/port/persistence"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func testGame(maxPlayers int) *entity.Game {
	return &entity.Game{
		ID:         42,
		HostID:     1,
		Title:      "Friday five-a-side",
		MaxPlayers: maxPlayers,
		Price:      150000,
		Currency:   "KZT",
		Datetime:   testNow.Add(24 * time.Hour),
	}
}

func newLedger(t *testing.T) (*Ledger, *persistencemocks.MockRegistrationRepository, *persistencemocks.MockGameRepository) {
	uow := persistencemocks.NewMockUnitOfWork(t)
	registrations := persistencemocks.NewMockRegistrationRepository(t)
	games := persistencemocks.NewMockGameRepository(t)
	uow.EXPECT().GetRegistrationRepository(context.Background()).Return(registrations).Maybe()
	uow.EXPECT().GetGameRepository(context.Background()).Return(games).Maybe()
	return NewLedger(uow), registrations, games
}

func TestLedger_EnsureHeadroom(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		confirmed int
		pending   int
		wantFull  bool
		wantSpots int
	}{
		{name: "empty game", confirmed: 0, pending: 0, wantSpots: 10},
		{name: "one seat left", confirmed: 6, pending: 3, wantSpots: 1},
		{name: "holds fill the last seats", confirmed: 7, pending: 3, wantFull: true},
		{name: "confirmed only", confirmed: 10, pending: 0, wantFull: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, registrations, _ := newLedger(t)
			registrations.EXPECT().CountReserved(ctx, uint64(42), testNow).Return(tt.confirmed, tt.pending, nil).Once()

			occupancy, err := ledger.EnsureHeadroom(ctx, testGame(10), testNow)

			assert.Equal(t, tt.confirmed, occupancy.ConfirmedCount)
			assert.Equal(t, tt.pending, occupancy.PendingCount)
			if !tt.wantFull {
				require.NoError(t, err)
				assert.Equal(t, tt.wantSpots, occupancy.SpotsLeft)
				return
			}

			require.ErrorIs(t, err, errs.ErrGameFull)
			var capacityErr *errs.CapacityError
			require.True(t, errors.As(err, &capacityErr))
			assert.Equal(t, errs.GameFull, errs.CodeOf(err))
			assert.Equal(t, 0, occupancy.SpotsLeft)
		})
	}
}

func TestLedger_ReservedCountWrapsRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	ledger, registrations, _ := newLedger(t)
	registrations.EXPECT().CountReserved(ctx, uint64(42), testNow).Return(0, 0, errs.ErrDatabaseConnection).Once()

	_, err := ledger.ReservedCount(ctx, testGame(10), testNow)

	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}

func TestLedger_RecordPlayers(t *testing.T) {
	ctx := context.Background()
	ledger, _, games := newLedger(t)
	games.EXPECT().AdjustPlayersCount(ctx, uint64(42), 1).Return(nil).Once()
	games.EXPECT().AdjustPlayersCount(ctx, uint64(42), -1).Return(nil).Once()

	assert.NoError(t, ledger.RecordConfirmed(ctx, 42))
	assert.NoError(t, ledger.RecordCancelled(ctx, 42))
}
