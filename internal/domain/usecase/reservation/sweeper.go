package reservation

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
)

const sweeperLease = "reservation-sweeper"

// SweeperConfig controls the hygiene sweep of lapsed holds
type SweeperConfig struct {
	Interval  time.Duration
	Grace     time.Duration // holds are removed only once expired for longer than this
	BatchSize int
	Holder    string // instance identity used for the lease
}

// Sweeper periodically deletes long-expired pending holds. Capacity checks
// already ignore expired holds, so a stopped or failing sweeper only leaves
// dead rows behind.
type Sweeper struct {
	uow          persistence.UnitOfWork
	leases       persistence.LeaseRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       SweeperConfig

	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

var _ usecase.SweepUseCase = (*Sweeper)(nil)

// NewSweeper creates a new Sweeper
func NewSweeper(
	uow persistence.UnitOfWork,
	leases persistence.LeaseRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config SweeperConfig,
) *Sweeper {
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 500
	}
	return &Sweeper{
		uow:          uow,
		leases:       leases,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
		stopCh:       make(chan struct{}),
	}
}

// Start launches the sweep loop in the background
func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.config.Interval)
		defer ticker.Stop()

		s.logger.Info("Reservation sweeper started", map[string]any{
			"interval": s.config.Interval.String(),
			"grace":    s.config.Grace.String(),
		})

		for {
			select {
			case <-ticker.C:
				if _, err := s.SweepExpired(ctx); err != nil {
					s.logger.Warn("Reservation sweep failed", map[string]any{"error": err.Error()})
				}
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the loop and waits for an in-flight sweep to finish
func (s *Sweeper) Stop() {
	s.once.Do(func() { close(s.stopCh) })
	s.wg.Wait()

	releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.leases.Release(releaseCtx, sweeperLease, s.config.Holder); err != nil {
		s.logger.Warn("Failed to release sweeper lease", map[string]any{"error": err.Error()})
	}
	s.logger.Info("Reservation sweeper stopped", nil)
}

// SweepExpired runs one sweep if this instance holds the sweeper lease
func (s *Sweeper) SweepExpired(ctx context.Context) (int64, error) {
	acquired, err := s.leases.Acquire(ctx, sweeperLease, s.config.Holder, 2*s.config.Interval)
	if err != nil {
		return 0, err
	}
	if !acquired {
		s.logger.Debug("Sweeper lease held by another instance", nil)
		return 0, nil
	}

	cutoff := s.timeProvider.Now().Add(-s.config.Grace)
	deleted, err := s.uow.GetRegistrationRepository(ctx).DeleteExpiredPending(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.logger.Info("Expired holds swept", map[string]any{
			"deleted": deleted,
			"cutoff":  cutoff.Format(time.RFC3339),
		})
	}
	return deleted, nil
}
