package migration

import (
	"context"
	"errors"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"

	driverPostgres = "postgres"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	driver           string
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager for PostgreSQL
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return NewMigrationManagerWithTimeProvider(db, logger, nil, driverPostgres)
}

// NewMigrationManagerWithTimeProvider creates a new migration manager with time provider
func NewMigrationManagerWithTimeProvider(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, driver string) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		driver:           driver,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"driver":         m.driver,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping schema migration", map[string]any{
			"version": currentVersion,
		})
		return m.runStartupMigrations(ctx)
	}

	if err := m.autoMigrateModels(ctx); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(ctx); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if m.driver == driverPostgres {
		if err := m.advancedIndexMgr.CreateAdvancedIndexes(); err != nil {
			m.logger.Error("Failed to create advanced indexes", map[string]any{
				"error": err.Error(),
			})
			return err
		}
		if err := m.advancedIndexMgr.CreatePerformanceTweaks(); err != nil {
			return err
		}
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Booking engine schema"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return m.runStartupMigrations(ctx)
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	appliedAt := time.Now().UTC()
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now()
	}

	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: appliedAt,
		Details:   details,
	}).Error
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.Game{},
		&model.Registration{},
		&model.PaymentTransaction{},
		&model.UserCredits{},
		&model.CreditTransaction{},
		&model.JobLease{},
	)
}

// runStartupMigrations runs the data repairs that are safe to repeat on every start
func (m *MigrationManager) runStartupMigrations(ctx context.Context) error {
	if err := NewReconcilePlayersCount(m.db, m.logger).Run(ctx); err != nil {
		m.logger.Error("Failed to run startup migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// createIndexes creates the indexes the booking invariants rely on. Both
// PostgreSQL and SQLite support partial indexes.
func (m *MigrationManager) createIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	db := m.db.WithContext(ctx)

	// At most one non-cancelled registration per (game, player)
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_registrations_active_unique
		ON registrations (game_id, player_id)
		WHERE status <> 'cancelled'`).Error; err != nil {
		return err
	}

	// An external charge can be recorded once per provider
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_payment_transactions_provider_external
		ON payment_transactions (provider, external_transaction_id)`).Error; err != nil {
		return err
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_job_leases_expires_at
		ON job_leases (expires_at)`).Error; err != nil {
		return err
	}

	return nil
}
