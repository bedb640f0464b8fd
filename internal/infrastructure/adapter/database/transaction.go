package database

import (
	"context"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions.
// Repositories handed out for a transactional context share its *gorm.DB.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper
	metrics      *MetricsCollector
	serializable bool
}

// NewUnitOfWork creates a new UnitOfWork instance. serializable switches the
// isolation level of every transaction to SERIALIZABLE (PostgreSQL only).
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, serializable bool) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  NewErrorMapper(),
		metrics:      NewMetricsCollector(logger, timeProvider),
		serializable: serializable,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Warn("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin")
	}

	if u.serializable {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
		}
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction. A serialization failure is reported
// as ErrConcurrentUpdate so the caller can replay the whole unit of work.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	_, err := u.metrics.MeasureQuery(ctx, "commit", func() (int64, error) {
		return 0, tx.Commit().Error
	})
	if err != nil {
		u.logger.Warn("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "commit")
	}
	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Debug("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetGameRepository returns a game repository in the current transaction
func (u *UnitOfWork) GetGameRepository(ctx context.Context) persistence.GameRepository {
	return repository.NewGameRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetRegistrationRepository returns a registration repository in the current transaction
func (u *UnitOfWork) GetRegistrationRepository(ctx context.Context) persistence.RegistrationRepository {
	return repository.NewRegistrationRepository(u.getDbFromContext(ctx), u.logger)
}

// GetPaymentTransactionRepository returns a payment transaction repository in the current transaction
func (u *UnitOfWork) GetPaymentTransactionRepository(ctx context.Context) persistence.PaymentTransactionRepository {
	return repository.NewPaymentTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetCreditsRepository returns a credits repository in the current transaction
func (u *UnitOfWork) GetCreditsRepository(ctx context.Context) persistence.CreditsRepository {
	return repository.NewCreditsRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
