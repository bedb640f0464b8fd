package credits

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/game-booking/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/game-booking/mocks/port/persistence"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T) (*Ledger, *persistencemocks.MockCreditsRepository) {
	uow := persistencemocks.NewMockUnitOfWork(t)
	repo := persistencemocks.NewMockCreditsRepository(t)
	ids := coremocks.NewMockIDGenerator(t)
	timeProvider := coremocks.NewMockTimeProvider(t)
	logger := coremocks.NewMockLogger(t)

	uow.EXPECT().GetCreditsRepository(mock.Anything).Return(repo).Maybe()
	ids.EXPECT().NewID().Return("ledger-1").Maybe()
	timeProvider.EXPECT().Now().Return(testNow).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return NewLedger(uow, ids, timeProvider, logger), repo
}

func balance(userID uint64, amount int64, currency string) *entity.UserCredits {
	return &entity.UserCredits{UserID: userID, Balance: amount, Currency: currency}
}

func TestLedger_Debit(t *testing.T) {
	ctx := context.Background()
	movement := entity.CreditMovement{UserID: 5, Amount: 80000, Currency: "kzt"}

	t.Run("records a negative entry", func(t *testing.T) {
		ledger, repo := newTestLedger(t)
		repo.EXPECT().Decrement(ctx, uint64(5), "KZT", int64(80000)).Return(true, nil).Once()
		repo.EXPECT().Get(ctx, uint64(5)).Return(balance(5, 20000, "KZT"), nil).Once()
		repo.EXPECT().AppendTransaction(ctx, mock.MatchedBy(func(tx *entity.CreditTransaction) bool {
			return tx.Amount == -80000 && tx.BalanceBefore == 100000 && tx.BalanceAfter == 20000
		})).Return(nil).Once()

		entry, err := ledger.Debit(ctx, movement)

		require.NoError(t, err)
		assert.Equal(t, entity.CreditUse, entry.Type)
		assert.Equal(t, "KZT", entry.Currency)
		assert.True(t, entry.IsConsistent())
		assert.Equal(t, testNow, entry.CreatedAt)
	})

	t.Run("insufficient balance leaves no entry", func(t *testing.T) {
		ledger, repo := newTestLedger(t)
		repo.EXPECT().Decrement(ctx, uint64(5), "KZT", int64(80000)).Return(false, nil).Once()
		repo.EXPECT().Get(ctx, uint64(5)).Return(balance(5, 50000, "KZT"), nil).Once()

		_, err := ledger.Debit(ctx, movement)

		require.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Equal(t, errs.InsufficientCredits, errs.CodeOf(err))
		repo.AssertNotCalled(t, "AppendTransaction", mock.Anything, mock.Anything)
	})

	t.Run("missing account is an empty balance", func(t *testing.T) {
		ledger, repo := newTestLedger(t)
		repo.EXPECT().Decrement(ctx, uint64(5), "KZT", int64(80000)).Return(false, nil).Once()
		repo.EXPECT().Get(ctx, uint64(5)).Return(nil, errs.ErrCreditsNotFound).Once()

		_, err := ledger.Debit(ctx, movement)

		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
	})

	t.Run("currency mismatch", func(t *testing.T) {
		ledger, repo := newTestLedger(t)
		repo.EXPECT().Decrement(ctx, uint64(5), "KZT", int64(80000)).Return(false, nil).Once()
		repo.EXPECT().Get(ctx, uint64(5)).Return(balance(5, 900000, "USD"), nil).Once()

		_, err := ledger.Debit(ctx, movement)

		assert.ErrorIs(t, err, errs.ErrCreditsCurrencyMismatch)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		ledger, _ := newTestLedger(t)

		_, err := ledger.Debit(ctx, entity.CreditMovement{UserID: 5, Amount: 0, Currency: "KZT"})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestLedger_Credit(t *testing.T) {
	ctx := context.Background()

	t.Run("opens or grows the account", func(t *testing.T) {
		ledger, repo := newTestLedger(t)
		registrationID := "reg-1"
		repo.EXPECT().IncrementOrCreate(ctx, uint64(5), "KZT", int64(80000)).Return(true, nil).Once()
		repo.EXPECT().Get(ctx, uint64(5)).Return(balance(5, 100000, "KZT"), nil).Once()
		repo.EXPECT().AppendTransaction(ctx, mock.Anything).Return(nil).Once()

		entry, err := ledger.Credit(ctx, entity.CreditMovement{
			UserID:         5,
			Amount:         80000,
			Currency:       "KZT",
			Type:           entity.CreditRefund,
			RegistrationID: &registrationID,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(80000), entry.Amount)
		assert.Equal(t, int64(20000), entry.BalanceBefore)
		assert.Equal(t, int64(100000), entry.BalanceAfter)
		assert.Equal(t, &registrationID, entry.RegistrationID)
	})

	t.Run("defaults to an admin adjustment", func(t *testing.T) {
		ledger, repo := newTestLedger(t)
		repo.EXPECT().IncrementOrCreate(ctx, uint64(5), "KZT", int64(100)).Return(true, nil).Once()
		repo.EXPECT().Get(ctx, uint64(5)).Return(balance(5, 100, "KZT"), nil).Once()
		repo.EXPECT().AppendTransaction(ctx, mock.Anything).Return(nil).Once()

		entry, err := ledger.Credit(ctx, entity.CreditMovement{UserID: 5, Amount: 100, Currency: "KZT"})

		require.NoError(t, err)
		assert.Equal(t, entity.CreditAdminAdjustment, entry.Type)
	})

	t.Run("currency mismatch", func(t *testing.T) {
		ledger, repo := newTestLedger(t)
		repo.EXPECT().IncrementOrCreate(ctx, uint64(5), "KZT", int64(100)).Return(false, nil).Once()
		repo.EXPECT().Get(ctx, uint64(5)).Return(balance(5, 100, "USD"), nil).Once()

		_, err := ledger.Credit(ctx, entity.CreditMovement{UserID: 5, Amount: 100, Currency: "KZT"})

		assert.ErrorIs(t, err, errs.ErrCreditsCurrencyMismatch)
	})

	t.Run("overflowing balance is an invalid amount", func(t *testing.T) {
		ledger, repo := newTestLedger(t)
		repo.EXPECT().IncrementOrCreate(ctx, uint64(5), "KZT", int64(1000)).Return(false, nil).Once()
		repo.EXPECT().Get(ctx, uint64(5)).Return(balance(5, math.MaxInt64-10, "KZT"), nil).Once()

		_, err := ledger.Credit(ctx, entity.CreditMovement{UserID: 5, Amount: 1000, Currency: "KZT"})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, errs.InvalidAmount, errs.CodeOf(err))
	})

	t.Run("use entries cannot be credited", func(t *testing.T) {
		ledger, _ := newTestLedger(t)

		_, err := ledger.Credit(ctx, entity.CreditMovement{UserID: 5, Amount: 100, Currency: "KZT", Type: entity.CreditUse})

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
