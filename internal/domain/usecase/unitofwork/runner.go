package unitofwork

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/persistence"
)

// DefaultMaxRetries is used when the runner is built with a non-positive retry count
const DefaultMaxRetries = 3

// Runner executes a function inside a single unit of work and retries it when
// the store aborts the transaction because of a concurrent update
type Runner struct {
	uow        persistence.UnitOfWork
	logger     coreport.Logger
	maxRetries int
	backoff    time.Duration
}

// NewRunner creates a new Runner
func NewRunner(uow persistence.UnitOfWork, logger coreport.Logger, maxRetries int) *Runner {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Runner{
		uow:        uow,
		logger:     logger,
		maxRetries: maxRetries,
		backoff:    10 * time.Millisecond,
	}
}

// WithBackoff overrides the base delay between attempts
func (r *Runner) WithBackoff(backoff time.Duration) *Runner {
	r.backoff = backoff
	return r
}

// Do runs fn with a transactional context. Everything fn writes through the
// repositories of that context commits or rolls back as one unit. fn may be
// called more than once, so it must not keep state across attempts.
func (r *Runner) Do(ctx context.Context, operation string, fn func(txCtx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		err = r.runOnce(ctx, fn)
		if err == nil || !errors.Is(err, errs.ErrConcurrentUpdate) {
			return err
		}
		if attempt == r.maxRetries {
			break
		}

		delay := r.backoff * time.Duration(1<<uint(attempt))
		r.logger.Warn("Unit of work aborted by concurrent update, retrying", map[string]any{
			"operation":  operation,
			"attempt":    attempt + 1,
			"maxRetries": r.maxRetries,
			"retryAfter": delay.String(),
			"error":      err.Error(),
		})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r.logger.Error("Unit of work retries exhausted", map[string]any{
		"operation":  operation,
		"maxRetries": r.maxRetries,
		"error":      err.Error(),
	})
	return fmt.Errorf("%s: %w", operation, errs.ErrConcurrentUpdate)
}

func (r *Runner) runOnce(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return err
	}

	finished := false
	defer func() {
		if p := recover(); p != nil {
			_ = r.uow.Rollback(txCtx)
			panic(p)
		}
		if !finished {
			if rbErr := r.uow.Rollback(txCtx); rbErr != nil {
				r.logger.Error("Failed to roll back unit of work", map[string]any{
					"error": rbErr.Error(),
					"cause": err.Error(),
				})
			}
		}
	}()

	if err = fn(txCtx); err != nil {
		return err
	}

	finished = true
	return r.uow.Commit(txCtx)
}
