package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/capacity"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/lifecycle"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/unitofwork"
	cachemocks "github.com/amirhossein-jamali/game-booking/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/game-booking/mocks/port/core"
	messagingmocks "github.com/amirhossein-jamali/game-booking/mocks/port/messaging"
	persistencemocks "github.com/amirhossein-jamali/game-booking/mocks/port/persistence"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	service       *Service
	games         *persistencemocks.MockGameRepository
	registrations *persistencemocks.MockRegistrationRepository
	publisher     *messagingmocks.MockEventPublisher
	ids           *coremocks.MockIDGenerator
}

func newFixture(t *testing.T) *fixture {
	uow := persistencemocks.NewMockUnitOfWork(t)
	games := persistencemocks.NewMockGameRepository(t)
	registrations := persistencemocks.NewMockRegistrationRepository(t)
	occupancyCache := cachemocks.NewMockOccupancyCache(t)
	publisher := messagingmocks.NewMockEventPublisher(t)
	ids := coremocks.NewMockIDGenerator(t)
	timeProvider := coremocks.NewMockTimeProvider(t)
	logger := coremocks.NewMockLogger(t)

	uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) { return ctx, nil }).Maybe()
	uow.EXPECT().Commit(mock.Anything).Return(nil).Maybe()
	uow.EXPECT().Rollback(mock.Anything).Return(nil).Maybe()
	uow.EXPECT().GetGameRepository(mock.Anything).Return(games).Maybe()
	uow.EXPECT().GetRegistrationRepository(mock.Anything).Return(registrations).Maybe()
	occupancyCache.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil).Maybe()
	timeProvider.EXPECT().Now().Return(testNow).Maybe()
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		logger.On(level, mock.Anything, mock.Anything).Maybe()
	}

	runner := unitofwork.NewRunner(uow, logger, 2).WithBackoff(0)
	notifier := lifecycle.NewNotifier(publisher, occupancyCache, timeProvider, logger)
	service := NewService(runner, uow, capacity.NewLedger(uow), notifier, ids, timeProvider, logger, 5*time.Minute)

	return &fixture{
		service:       service,
		games:         games,
		registrations: registrations,
		publisher:     publisher,
		ids:           ids,
	}
}

func paidGame(maxPlayers int) *entity.Game {
	return &entity.Game{
		ID:         42,
		MaxPlayers: maxPlayers,
		Price:      150000,
		Currency:   "KZT",
		Datetime:   testNow.Add(24 * time.Hour),
	}
}

func (f *fixture) expectEvent(eventType entity.RegistrationEventType) {
	f.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entity.RegistrationEvent) bool {
		return e.Type == eventType
	})).Return(nil).Once()
}

func TestService_ReserveSeat(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a five minute hold", func(t *testing.T) {
		f := newFixture(t)
		f.games.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(paidGame(10), nil).Once()
		f.registrations.EXPECT().GetActive(mock.Anything, uint64(42), uint64(7)).Return(nil, errs.ErrRegistrationNotFound).Once()
		f.registrations.EXPECT().CountReserved(mock.Anything, uint64(42), testNow).Return(4, 5, nil).Once()
		f.ids.EXPECT().NewID().Return("reg-1").Once()
		f.registrations.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *entity.Registration) bool {
			return r.ID == "reg-1" && r.IsPending()
		})).Return(nil).Once()
		f.expectEvent(entity.EventRegistrationReserved)

		result, err := f.service.ReserveSeat(ctx, 42, 7)

		require.NoError(t, err)
		assert.Equal(t, "reg-1", result.ReservationID)
		assert.False(t, result.Reused)
		require.NotNil(t, result.ExpiresAt)
		assert.Equal(t, testNow.Add(5*time.Minute), *result.ExpiresAt)
	})

	t.Run("returns the live hold without counting again", func(t *testing.T) {
		f := newFixture(t)
		existing := entity.NewPendingRegistration("reg-1", 42, 7, testNow.Add(-time.Minute), 5*time.Minute)
		f.games.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(paidGame(1), nil).Once()
		f.registrations.EXPECT().GetActive(mock.Anything, uint64(42), uint64(7)).Return(existing, nil).Once()

		result, err := f.service.ReserveSeat(ctx, 42, 7)

		require.NoError(t, err)
		assert.True(t, result.Reused)
		assert.Equal(t, testNow.Add(4*time.Minute), *result.ExpiresAt)
		f.registrations.AssertNotCalled(t, "CountReserved", mock.Anything, mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("renews a lapsed hold on the same row", func(t *testing.T) {
		f := newFixture(t)
		lapsed := entity.NewPendingRegistration("reg-1", 42, 7, testNow.Add(-10*time.Minute), 5*time.Minute)
		f.games.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(paidGame(1), nil).Once()
		f.registrations.EXPECT().GetActive(mock.Anything, uint64(42), uint64(7)).Return(lapsed, nil).Once()
		f.registrations.EXPECT().CountReserved(mock.Anything, uint64(42), testNow).Return(0, 0, nil).Once()
		f.registrations.EXPECT().Update(mock.Anything, lapsed).Return(nil).Once()
		f.expectEvent(entity.EventRegistrationReserved)

		result, err := f.service.ReserveSeat(ctx, 42, 7)

		require.NoError(t, err)
		assert.Equal(t, "reg-1", result.ReservationID)
		assert.Equal(t, testNow.Add(5*time.Minute), *result.ExpiresAt)
	})

	t.Run("free games confirm immediately", func(t *testing.T) {
		f := newFixture(t)
		game := paidGame(10)
		game.Price = 0
		f.games.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(game, nil).Once()
		f.registrations.EXPECT().GetActive(mock.Anything, uint64(42), uint64(7)).Return(nil, errs.ErrRegistrationNotFound).Once()
		f.registrations.EXPECT().CountReserved(mock.Anything, uint64(42), testNow).Return(0, 0, nil).Once()
		f.ids.EXPECT().NewID().Return("reg-1").Once()
		f.registrations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.games.EXPECT().AdjustPlayersCount(mock.Anything, uint64(42), 1).Return(nil).Once()
		f.expectEvent(entity.EventRegistrationConfirmed)

		result, err := f.service.ReserveSeat(ctx, 42, 7)

		require.NoError(t, err)
		assert.Equal(t, entity.RegistrationConfirmed, result.Registration.Status)
		assert.Nil(t, result.ExpiresAt)
	})

	t.Run("rejections", func(t *testing.T) {
		started := paidGame(10)
		started.Datetime = testNow.Add(-time.Minute)
		confirmed := entity.NewConfirmedRegistration("reg-1", 42, 7, testNow)

		tests := []struct {
			name     string
			game     *entity.Game
			existing *entity.Registration
			counts   []int
			want     error
		}{
			{name: "full", game: paidGame(2), counts: []int{1, 1}, want: errs.ErrGameFull},
			{name: "already confirmed", game: paidGame(2), existing: confirmed, want: errs.ErrAlreadyRegistered},
			{name: "game started", game: started, want: errs.ErrGameStarted},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				f.games.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(tt.game, nil).Once()
				if tt.existing != nil {
					f.registrations.EXPECT().GetActive(mock.Anything, uint64(42), uint64(7)).Return(tt.existing, nil).Once()
				} else {
					f.registrations.EXPECT().GetActive(mock.Anything, uint64(42), uint64(7)).Return(nil, errs.ErrRegistrationNotFound).Once()
				}
				if tt.counts != nil {
					f.registrations.EXPECT().CountReserved(mock.Anything, uint64(42), testNow).Return(tt.counts[0], tt.counts[1], nil).Once()
				}

				_, err := f.service.ReserveSeat(ctx, 42, 7)

				assert.ErrorIs(t, err, tt.want)
				f.registrations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("unknown game", func(t *testing.T) {
		f := newFixture(t)
		f.games.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(nil, errs.ErrGameNotFound).Once()

		_, err := f.service.ReserveSeat(ctx, 42, 7)

		assert.ErrorIs(t, err, errs.ErrGameNotFound)
	})

	t.Run("zero ids", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.ReserveSeat(ctx, 0, 7)
		assert.ErrorIs(t, err, errs.ErrInvalidGameID)

		_, err = f.service.ReserveSeat(ctx, 42, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidPlayerID)
	})
}

func TestService_ReleaseReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the hold and announces it", func(t *testing.T) {
		f := newFixture(t)
		f.registrations.EXPECT().DeletePending(mock.Anything, uint64(42), uint64(7), "reg-1").Return("reg-1", nil).Once()
		f.expectEvent(entity.EventRegistrationReleased)

		result, err := f.service.ReleaseReservation(ctx, 42, 7, "reg-1")

		require.NoError(t, err)
		assert.True(t, result.Released)
	})

	t.Run("nothing to release is not an error", func(t *testing.T) {
		f := newFixture(t)
		f.registrations.EXPECT().DeletePending(mock.Anything, uint64(42), uint64(7), "").Return("", nil).Once()

		result, err := f.service.ReleaseReservation(ctx, 42, 7, "")

		require.NoError(t, err)
		assert.False(t, result.Released)
	})
}
