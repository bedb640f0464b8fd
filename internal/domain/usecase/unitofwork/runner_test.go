package unitofwork

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/game-booking/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/game-booking/mocks/port/persistence"
)

type txKey struct{}

func newRunner(t *testing.T, maxRetries int) (*Runner, *persistencemocks.MockUnitOfWork, *coremocks.MockLogger) {
	uow := persistencemocks.NewMockUnitOfWork(t)
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return NewRunner(uow, logger, maxRetries).WithBackoff(0), uow, logger
}

func TestRunner_Do(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey{}, "tx")

	t.Run("commits when fn succeeds", func(t *testing.T) {
		runner, uow, _ := newRunner(t, 3)
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		uow.EXPECT().Commit(txCtx).Return(nil).Once()

		var seen context.Context
		err := runner.Do(ctx, "test", func(c context.Context) error {
			seen = c
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, txCtx, seen)
	})

	t.Run("rolls back and returns domain errors without retry", func(t *testing.T) {
		runner, uow, _ := newRunner(t, 3)
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		calls := 0
		err := runner.Do(ctx, "test", func(context.Context) error {
			calls++
			return errs.ErrGameFull
		})

		assert.ErrorIs(t, err, errs.ErrGameFull)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries concurrent updates until success", func(t *testing.T) {
		runner, uow, _ := newRunner(t, 3)
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Times(3)
		uow.EXPECT().Rollback(txCtx).Return(nil).Twice()
		uow.EXPECT().Commit(txCtx).Return(nil).Once()

		calls := 0
		err := runner.Do(ctx, "test", func(context.Context) error {
			calls++
			if calls < 3 {
				return errs.ErrConcurrentUpdate
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("retries commit failures caused by serialization", func(t *testing.T) {
		runner, uow, _ := newRunner(t, 1)
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Twice()
		uow.EXPECT().Commit(txCtx).Return(errs.ErrConcurrentUpdate).Once()
		uow.EXPECT().Commit(txCtx).Return(nil).Once()

		err := runner.Do(ctx, "test", func(context.Context) error { return nil })

		assert.NoError(t, err)
	})

	t.Run("gives up with CONCURRENT_UPDATE", func(t *testing.T) {
		runner, uow, _ := newRunner(t, 2)
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Times(3)
		uow.EXPECT().Rollback(txCtx).Return(nil).Times(3)

		err := runner.Do(ctx, "reserve_seat", func(context.Context) error {
			return errs.ErrConcurrentUpdate
		})

		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
		assert.Equal(t, errs.ConcurrentUpdate, errs.CodeOf(err))
	})

	t.Run("begin failure is returned as is", func(t *testing.T) {
		runner, uow, _ := newRunner(t, 3)
		beginErr := errors.New("connection refused")
		uow.EXPECT().Begin(ctx).Return(ctx, beginErr).Once()

		err := runner.Do(ctx, "test", func(context.Context) error {
			t.Fatal("fn must not run without a transaction")
			return nil
		})

		assert.ErrorIs(t, err, beginErr)
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		runner, uow, _ := newRunner(t, 3)
		uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		assert.Panics(t, func() {
			_ = runner.Do(ctx, "test", func(context.Context) error { panic("boom") })
		})
	})
}
