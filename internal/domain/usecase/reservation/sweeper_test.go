package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/game-booking/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/game-booking/mocks/port/persistence"
)

func newTestSweeper(t *testing.T) (*Sweeper, *persistencemocks.MockLeaseRepository, *persistencemocks.MockRegistrationRepository) {
	uow := persistencemocks.NewMockUnitOfWork(t)
	leases := persistencemocks.NewMockLeaseRepository(t)
	registrations := persistencemocks.NewMockRegistrationRepository(t)
	timeProvider := coremocks.NewMockTimeProvider(t)
	logger := coremocks.NewMockLogger(t)

	uow.EXPECT().GetRegistrationRepository(mock.Anything).Return(registrations).Maybe()
	timeProvider.EXPECT().Now().Return(testNow).Maybe()
	for _, level := range []string{"Debug", "Info", "Warn"} {
		logger.On(level, mock.Anything, mock.Anything).Maybe()
	}

	sweeper := NewSweeper(uow, leases, timeProvider, logger, SweeperConfig{
		Interval:  time.Hour,
		Grace:     2 * time.Minute,
		BatchSize: 100,
		Holder:    "instance-a",
	})
	return sweeper, leases, registrations
}

func TestSweeper_SweepExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes holds past expiry plus grace", func(t *testing.T) {
		sweeper, leases, registrations := newTestSweeper(t)
		leases.EXPECT().Acquire(ctx, "reservation-sweeper", "instance-a", 2*time.Hour).Return(true, nil).Once()
		registrations.EXPECT().DeleteExpiredPending(ctx, testNow.Add(-2*time.Minute), 100).Return(3, nil).Once()

		deleted, err := sweeper.SweepExpired(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})

	t.Run("skips when another instance holds the lease", func(t *testing.T) {
		sweeper, leases, registrations := newTestSweeper(t)
		leases.EXPECT().Acquire(ctx, "reservation-sweeper", "instance-a", 2*time.Hour).Return(false, nil).Once()

		deleted, err := sweeper.SweepExpired(ctx)

		require.NoError(t, err)
		assert.Zero(t, deleted)
		registrations.AssertNotCalled(t, "DeleteExpiredPending", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lease errors are returned", func(t *testing.T) {
		sweeper, leases, _ := newTestSweeper(t)
		leases.EXPECT().Acquire(ctx, mock.Anything, mock.Anything, mock.Anything).Return(false, errs.ErrDatabaseConnection).Once()

		_, err := sweeper.SweepExpired(ctx)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestSweeper_StopReleasesLease(t *testing.T) {
	sweeper, leases, _ := newTestSweeper(t)
	leases.EXPECT().Release(mock.Anything, "reservation-sweeper", "instance-a").Return(nil).Once()

	sweeper.Start(context.Background())
	sweeper.Stop()
}
