package repository

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LeaseRepository implements named job leases using GORM
type LeaseRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLeaseRepository creates a new LeaseRepository instance
func NewLeaseRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LeaseRepository {
	return &LeaseRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Acquire takes the lease for holder if it is free, expired or already held by holder
func (r *LeaseRepository) Acquire(ctx context.Context, name, holder string, ttl time.Duration) (bool, error) {
	now := r.timeProvider.Now().UTC()
	expiresAt := now.Add(ttl)

	// Upsert in a single statement, the WHERE on the conflict branch keeps a
	// live lease of another holder in place
	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO job_leases (name, holder, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE
		SET holder = EXCLUDED.holder,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE job_leases.expires_at <= ? OR job_leases.holder = EXCLUDED.holder`,
		name, holder, expiresAt, now, now,
		now,
	)
	if result.Error != nil {
		if isContextError(result.Error) {
			r.logger.Warn("Context timeout acquiring lease", map[string]any{
				"lease":  name,
				"holder": holder,
				"error":  result.Error.Error(),
			})
			return false, fmt.Errorf("lease acquisition timeout: %w", result.Error)
		}
		r.logger.Error("Database error acquiring lease", map[string]any{
			"lease":  name,
			"holder": holder,
			"error":  result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	acquired := result.RowsAffected > 0
	r.logger.Debug("Lease acquisition evaluated", map[string]any{
		"lease":      name,
		"holder":     holder,
		"acquired":   acquired,
		"expires_at": expiresAt,
	})
	return acquired, nil
}

// Release gives the lease up if holder still owns it. A context error is not
// treated as a failure since the lease expires on its own.
func (r *LeaseRepository) Release(ctx context.Context, name, holder string) error {
	result := r.db.WithContext(ctx).
		Where("name = ? AND holder = ?", name, holder).
		Delete(&model.JobLease{})

	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context timeout when releasing lease, lease will expire automatically", map[string]any{
			"lease":  name,
			"holder": holder,
			"error":  result.Error.Error(),
		})
		return nil
	}
	if result.Error != nil {
		r.logger.Error("Failed to release lease", map[string]any{
			"lease":  name,
			"holder": holder,
			"error":  result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Lease released", map[string]any{
			"lease":  name,
			"holder": holder,
		})
	}
	return nil
}
