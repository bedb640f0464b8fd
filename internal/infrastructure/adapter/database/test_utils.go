package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/model"
)

// TestDBManager provides a migrated SQLite database for integration tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates, connects and migrates a database file in the
// test's temporary directory. It is closed when the test finishes.
func NewTestDBManager(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	config := &Config{
		Driver:          DriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "booking_test.db"),
		MaxOpenConns:    1, // one writer at a time, like a row lock per database
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// TruncateAllTables removes every booking row, keeping the schema
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	for _, table := range []string{
		"credit_transactions", "user_credits", "payment_transactions",
		"registrations", "games", "job_leases",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}

// CreateTestGame inserts a game directly and returns its ID
func (m *TestDBManager) CreateTestGame(t *testing.T, maxPlayers int, price int64, currency string, startsAt time.Time) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	game := model.Game{
		HostID:     1,
		Title:      "test game",
		MaxPlayers: maxPlayers,
		Price:      price,
		Currency:   currency,
		Datetime:   startsAt.UTC(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := m.Manager.DB().Create(&game).Error; err != nil {
		t.Fatalf("Failed to create test game: %v", err)
	}
	return game.ID
}

// CreateTestCredits opens a credits account with the given balance
func (m *TestDBManager) CreateTestCredits(t *testing.T, userID uint64, balance int64, currency string) {
	t.Helper()

	now := m.TimeProvider.Now()
	credits := model.UserCredits{
		UserID:    userID,
		Balance:   balance,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.Manager.DB().Create(&credits).Error; err != nil {
		t.Fatalf("Failed to create test credits: %v", err)
	}
}

// CountRows returns the number of rows matching where in table
func (m *TestDBManager) CountRows(t *testing.T, table, where string, args ...any) int64 {
	t.Helper()

	var count int64
	query := m.Manager.DB().Table(table)
	if where != "" {
		query = query.Where(where, args...)
	}
	if err := query.Count(&count).Error; err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}
