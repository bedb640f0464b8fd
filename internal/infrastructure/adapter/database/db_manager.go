package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/repository"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// dialector returns the GORM dialector for the configured driver
func (m *Manager) dialector() (gorm.Dialector, error) {
	switch m.config.Driver {
	case DriverPostgres:
		return postgres.Open(m.config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(m.config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// Connect establishes a database connection, retrying while the server is unreachable
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	dialector, err := m.dialector()
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		PrepareStmt: !m.config.IsSQLite(),
	}

	retryConfig := DefaultRetryConfig()
	retryConfig.MaxRetries = m.config.RetryAttempts
	if m.config.RetryDelay > 0 {
		retryConfig.RetryInterval = m.config.RetryDelay
		retryConfig.MaxInterval = 8 * m.config.RetryDelay
	}

	var gormDB *gorm.DB
	err = RetryOnTransientError(ctx, retryConfig, func() error {
		var openErr error
		gormDB, openErr = gorm.Open(dialector, gormConfig)
		return openErr
	}, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManagerWithTimeProvider(gormDB, m.logger, m.timeProvider, m.config.Driver)

	if m.config.MonitorInterval > 0 {
		m.connectionMonitor = NewConnectionPoolMonitor(m, m.logger, m.timeProvider)
		if err := m.connectionMonitor.Start(m.config.MonitorInterval); err != nil {
			m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
		}
	}

	return m.db, nil
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrationMgr == nil {
		return fmt.Errorf("database is not connected")
	}
	return m.migrationMgr.MigrateAll(ctx)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database is not connected")
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// PoolMetrics returns the last connection pool sample
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance. PostgreSQL transactions
// run SERIALIZABLE; SQLite write transactions are already serialized by BEGIN IMMEDIATE.
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider, !m.config.IsSQLite())
}

// CreateLeaseRepository creates the lease repository used by background jobs
func (m *Manager) CreateLeaseRepository() persistence.LeaseRepository {
	return repository.NewLeaseRepository(m.db, m.timeProvider, m.logger)
}
