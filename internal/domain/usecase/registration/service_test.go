package registration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/capacity"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/lifecycle"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/unitofwork"
	cachemocks "github.com/amirhossein-jamali/game-booking/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/game-booking/mocks/port/core"
	messagingmocks "github.com/amirhossein-jamali/game-booking/mocks/port/messaging"
	persistencemocks "github.com/amirhossein-jamali/game-booking/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/game-booking/mocks/port/usecase"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	service       *Service
	games         *persistencemocks.MockGameRepository
	registrations *persistencemocks.MockRegistrationRepository
	payments      *persistencemocks.MockPaymentTransactionRepository
	ledger        *usecasemocks.MockCreditsLedger
	publisher     *messagingmocks.MockEventPublisher
	ids           *coremocks.MockIDGenerator
}

func newFixture(t *testing.T) *fixture {
	uow := persistencemocks.NewMockUnitOfWork(t)
	games := persistencemocks.NewMockGameRepository(t)
	registrations := persistencemocks.NewMockRegistrationRepository(t)
	payments := persistencemocks.NewMockPaymentTransactionRepository(t)
	ledger := usecasemocks.NewMockCreditsLedger(t)
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
	uow.EXPECT().GetPaymentTransactionRepository(mock.Anything).Return(payments).Maybe()
	occupancyCache.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil).Maybe()
	timeProvider.EXPECT().Now().Return(testNow).Maybe()
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		logger.On(level, mock.Anything, mock.Anything).Maybe()
	}

	runner := unitofwork.NewRunner(uow, logger, 2).WithBackoff(0)
	notifier := lifecycle.NewNotifier(publisher, occupancyCache, timeProvider, logger)

	return &fixture{
		service:       NewService(runner, uow, capacity.NewLedger(uow), ledger, notifier, ids, timeProvider, logger),
		games:         games,
		registrations: registrations,
		payments:      payments,
		ledger:        ledger,
		publisher:     publisher,
		ids:           ids,
	}
}

func paidGame() *entity.Game {
	return &entity.Game{
		ID:         42,
		MaxPlayers: 10,
		Price:      150000,
		Currency:   "KZT",
		Datetime:   testNow.Add(24 * time.Hour),
	}
}

func liveHold() *entity.Registration {
	return entity.NewPendingRegistration("reg-1", 42, 7, testNow.Add(-time.Minute), 5*time.Minute)
}

func paidSeat() *entity.Registration {
	reg := entity.NewConfirmedRegistration("reg-1", 42, 7, testNow.Add(-time.Hour))
	reg.PaymentStatus = entity.PaymentPaid
	return reg
}

func strPtr(s string) *string { return &s }

func (f *fixture) lockGame(game *entity.Game) {
	f.games.EXPECT().GetForUpdate(mock.Anything, game.ID).Return(game, nil).Once()
}

func (f *fixture) activeRegistration(reg *entity.Registration) {
	if reg == nil {
		f.registrations.EXPECT().GetActive(mock.Anything, uint64(42), uint64(7)).Return(nil, errs.ErrRegistrationNotFound).Once()
		return
	}
	f.registrations.EXPECT().GetActive(mock.Anything, uint64(42), uint64(7)).Return(reg, nil).Once()
}

func (f *fixture) expectConfirmed() {
	f.registrations.EXPECT().Update(mock.Anything, mock.MatchedBy(func(r *entity.Registration) bool {
		return r.IsConfirmed() && r.ExpiresAt == nil
	})).Return(nil).Once()
	f.games.EXPECT().AdjustPlayersCount(mock.Anything, uint64(42), 1).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entity.RegistrationEvent) bool {
		return e.Type == entity.EventRegistrationConfirmed
	})).Return(nil).Once()
}

func confirmRequest(evidence entity.PaymentEvidence) usecase.ConfirmRequest {
	return usecase.ConfirmRequest{GameID: 42, PlayerID: 7, Evidence: evidence}
}

func TestService_ConfirmRegistration_PaidGame(t *testing.T) {
	ctx := context.Background()

	t.Run("binds the external transaction", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(liveHold())
		f.ids.EXPECT().NewID().Return("pay-1").Once()
		f.payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.PaymentTransaction) bool {
			return p.Provider == "kaspi" && p.ExternalTransactionID == "tx-100" && p.RegistrationID == "reg-1" && p.Amount == 150000
		})).Return(true, nil).Once()
		f.expectConfirmed()

		result, err := f.service.ConfirmRegistration(ctx, confirmRequest(entity.PaymentEvidence{
			ReservationID: strPtr("reg-1"),
			TransactionID: strPtr("tx-100"),
		}))

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentPaid, result.Registration.PaymentStatus)
		assert.Equal(t, "pay-1", result.Transaction.ID)
	})

	t.Run("a retried transaction for the same registration is accepted", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(liveHold())
		f.ids.EXPECT().NewID().Return("pay-2").Once()
		f.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(false, nil).Once()
		f.payments.EXPECT().GetByExternalID(mock.Anything, "kaspi", "tx-100").
			Return(&entity.PaymentTransaction{ID: "pay-1", RegistrationID: "reg-1", Amount: 150000}, nil).Once()
		f.expectConfirmed()

		result, err := f.service.ConfirmRegistration(ctx, confirmRequest(entity.PaymentEvidence{TransactionID: strPtr("tx-100")}))

		require.NoError(t, err)
		assert.Equal(t, "pay-1", result.Transaction.ID)
	})

	t.Run("a transaction bound elsewhere is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(liveHold())
		f.ids.EXPECT().NewID().Return("pay-2").Once()
		f.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(false, nil).Once()
		f.payments.EXPECT().GetByExternalID(mock.Anything, "kaspi", "tx-100").
			Return(&entity.PaymentTransaction{ID: "pay-1", RegistrationID: "reg-other"}, nil).Once()

		_, err := f.service.ConfirmRegistration(ctx, confirmRequest(entity.PaymentEvidence{TransactionID: strPtr("tx-100")}))

		require.ErrorIs(t, err, errs.ErrTransactionConflict)
		f.registrations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("pays from credits", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(liveHold())
		f.ledger.EXPECT().Debit(mock.Anything, mock.MatchedBy(func(m entity.CreditMovement) bool {
			return m.UserID == 7 && m.Amount == 150000 && m.Type == entity.CreditUse && *m.RegistrationID == "reg-1"
		})).Return(&entity.CreditTransaction{ID: "ledger-1", Amount: -150000}, nil).Once()
		f.ids.EXPECT().NewID().Return("pay-1").Once()
		f.payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.PaymentTransaction) bool {
			return p.Provider == entity.CreditsProvider && p.ExternalTransactionID == "ledger-1"
		})).Return(true, nil).Once()
		f.expectConfirmed()

		result, err := f.service.ConfirmRegistration(ctx, confirmRequest(entity.PaymentEvidence{UseCredits: true}))

		require.NoError(t, err)
		assert.Equal(t, entity.CreditsProvider, result.Transaction.Provider)
	})

	t.Run("widget confirmation records no transaction", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(liveHold())
		f.expectConfirmed()

		result, err := f.service.ConfirmRegistration(ctx, confirmRequest(entity.PaymentEvidence{WidgetConfirmed: true}))

		require.NoError(t, err)
		assert.Nil(t, result.Transaction)
	})

	t.Run("insufficient credits changes nothing", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(liveHold())
		f.ledger.EXPECT().Debit(mock.Anything, mock.Anything).
			Return(nil, errs.NewInsufficientCreditsError(7, 150000, 50000, "KZT")).Once()

		_, err := f.service.ConfirmRegistration(ctx, confirmRequest(entity.PaymentEvidence{UseCredits: true}))

		require.ErrorIs(t, err, errs.ErrInsufficientCredits)
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.registrations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestService_ConfirmRegistration_Rejections(t *testing.T) {
	ctx := context.Background()
	lapsed := entity.NewPendingRegistration("reg-1", 42, 7, testNow.Add(-10*time.Minute), 5*time.Minute)

	tests := []struct {
		name     string
		existing *entity.Registration
		evidence entity.PaymentEvidence
		want     error
		wantCode errs.Code
	}{
		{
			name:     "swept hold with a reservation id",
			evidence: entity.PaymentEvidence{ReservationID: strPtr("reg-1"), WidgetConfirmed: true},
			want:     errs.ErrReservationExpired,
			wantCode: errs.ReservationExpired,
		},
		{
			name:     "no hold at all",
			evidence: entity.PaymentEvidence{WidgetConfirmed: true},
			want:     errs.ErrNotRegistered,
			wantCode: errs.NotRegistered,
		},
		{
			name:     "lapsed hold",
			existing: lapsed,
			evidence: entity.PaymentEvidence{WidgetConfirmed: true},
			want:     errs.ErrReservationExpired,
			wantCode: errs.ReservationExpired,
		},
		{
			name:     "other reservation id",
			existing: liveHold(),
			evidence: entity.PaymentEvidence{ReservationID: strPtr("reg-9"), WidgetConfirmed: true},
			want:     errs.ErrReservationMismatch,
			wantCode: errs.ReservationMismatch,
		},
		{
			name:     "no payment evidence",
			existing: liveHold(),
			evidence: entity.PaymentEvidence{ReservationID: strPtr("reg-1")},
			want:     errs.ErrMissingPayment,
			wantCode: errs.MissingPayment,
		},
		{
			name:     "already confirmed",
			existing: paidSeat(),
			evidence: entity.PaymentEvidence{WidgetConfirmed: true},
			want:     errs.ErrAlreadyRegistered,
			wantCode: errs.AlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.lockGame(paidGame())
			f.activeRegistration(tt.existing)

			_, err := f.service.ConfirmRegistration(ctx, confirmRequest(tt.evidence))

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.wantCode, errs.CodeOf(err))
			f.registrations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.games.AssertNotCalled(t, "AdjustPlayersCount", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_ConfirmRegistration_FreeGame(t *testing.T) {
	ctx := context.Background()
	free := paidGame()
	free.Price = 0

	t.Run("admits without payment", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(free)
		f.activeRegistration(nil)
		f.registrations.EXPECT().CountReserved(mock.Anything, uint64(42), testNow).Return(3, 0, nil).Once()
		f.ids.EXPECT().NewID().Return("reg-1").Once()
		f.registrations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.games.EXPECT().AdjustPlayersCount(mock.Anything, uint64(42), 1).Return(nil).Once()
		f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.ConfirmRegistration(ctx, confirmRequest(entity.PaymentEvidence{}))

		require.NoError(t, err)
		assert.Equal(t, entity.RegistrationConfirmed, result.Registration.Status)
		assert.Equal(t, entity.PaymentPending, result.Registration.PaymentStatus)
	})

	t.Run("full", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(free)
		f.activeRegistration(nil)
		f.registrations.EXPECT().CountReserved(mock.Anything, uint64(42), testNow).Return(10, 0, nil).Once()

		_, err := f.service.ConfirmRegistration(ctx, confirmRequest(entity.PaymentEvidence{}))

		assert.ErrorIs(t, err, errs.ErrGameFull)
	})
}

func TestService_CancelRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds what was paid", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(paidSeat())
		f.payments.EXPECT().ListByRegistration(mock.Anything, "reg-1").Return([]*entity.PaymentTransaction{
			{ID: "pay-1", Amount: 150000, Status: entity.PaymentTransactionSucceeded},
			{ID: "pay-0", Amount: 150000, Status: entity.PaymentTransactionFailed},
		}, nil).Once()
		f.ledger.EXPECT().Credit(mock.Anything, mock.MatchedBy(func(m entity.CreditMovement) bool {
			return m.Amount == 150000 && m.Type == entity.CreditRefund && m.Currency == "KZT"
		})).Return(&entity.CreditTransaction{ID: "ledger-9"}, nil).Once()
		f.registrations.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.games.EXPECT().AdjustPlayersCount(mock.Anything, uint64(42), -1).Return(nil).Once()
		f.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entity.RegistrationEvent) bool {
			return e.Type == entity.EventRegistrationCancelled
		})).Return(nil).Once()

		result, err := f.service.CancelRegistration(ctx, 42, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(150000), result.RefundAmount)
		assert.Equal(t, "ledger-9", *result.RefundReference)
		assert.Equal(t, entity.RegistrationCancelled, result.Registration.Status)
		assert.Equal(t, entity.PaymentRefunded, result.Registration.PaymentStatus)
	})

	t.Run("widget payments refund the price", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(paidSeat())
		f.payments.EXPECT().ListByRegistration(mock.Anything, "reg-1").Return(nil, nil).Once()
		f.ledger.EXPECT().Credit(mock.Anything, mock.MatchedBy(func(m entity.CreditMovement) bool {
			return m.Amount == 150000
		})).Return(&entity.CreditTransaction{ID: "ledger-9"}, nil).Once()
		f.registrations.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.games.EXPECT().AdjustPlayersCount(mock.Anything, uint64(42), -1).Return(nil).Once()
		f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.CancelRegistration(ctx, 42, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(150000), result.RefundAmount)
	})

	t.Run("a failed refund leaves the seat confirmed", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(paidSeat())
		f.payments.EXPECT().ListByRegistration(mock.Anything, "reg-1").Return(nil, nil).Once()
		f.ledger.EXPECT().Credit(mock.Anything, mock.Anything).
			Return(nil, errs.NewCurrencyMismatchError(7, "USD", "KZT")).Once()

		_, err := f.service.CancelRegistration(ctx, 42, 7)

		require.ErrorIs(t, err, errs.ErrCreditsCurrencyMismatch)
		f.registrations.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.games.AssertNotCalled(t, "AdjustPlayersCount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("free seats cancel without refund", func(t *testing.T) {
		f := newFixture(t)
		free := paidGame()
		free.Price = 0
		f.lockGame(free)
		f.activeRegistration(entity.NewConfirmedRegistration("reg-1", 42, 7, testNow))
		f.registrations.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.games.EXPECT().AdjustPlayersCount(mock.Anything, uint64(42), -1).Return(nil).Once()
		f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.CancelRegistration(ctx, 42, 7)

		require.NoError(t, err)
		assert.Nil(t, result.RefundReference)
		assert.Zero(t, result.RefundAmount)
	})

	t.Run("pending holds cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(liveHold())

		_, err := f.service.CancelRegistration(ctx, 42, 7)

		assert.ErrorIs(t, err, errs.ErrNotRegistered)
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		f := newFixture(t)
		f.lockGame(paidGame())
		f.activeRegistration(nil)

		_, err := f.service.CancelRegistration(ctx, 42, 7)

		assert.ErrorIs(t, err, errs.ErrNotRegistered)
	})
}

func TestService_GetRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("live hold", func(t *testing.T) {
		f := newFixture(t)
		f.activeRegistration(liveHold())

		reg, err := f.service.GetRegistration(ctx, 42, 7)

		require.NoError(t, err)
		assert.Equal(t, "reg-1", reg.ID)
	})

	t.Run("lapsed hold reads as not registered", func(t *testing.T) {
		f := newFixture(t)
		f.activeRegistration(entity.NewPendingRegistration("reg-1", 42, 7, testNow.Add(-6*time.Minute), 5*time.Minute))

		_, err := f.service.GetRegistration(ctx, 42, 7)

		assert.ErrorIs(t, err, errs.ErrNotRegistered)
	})
}
