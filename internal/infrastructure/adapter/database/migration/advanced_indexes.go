package migration

import (
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates indexes that only PostgreSQL supports
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []struct {
		name string
		sql  string
	}{
		{
			// Ledger history is append-only and read by time range
			name: "credit_transactions BRIN on created_at",
			sql: `CREATE INDEX IF NOT EXISTS idx_credit_transactions_created_at_brin
				ON credit_transactions USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
		{
			// The sweeper scans only pending holds ordered by expiry
			name: "registrations partial index on pending expiry",
			sql: `CREATE INDEX IF NOT EXISTS idx_registrations_pending_expires_at
				ON registrations (expires_at)
				WHERE status = 'pending'`,
		},
		{
			name: "registrations partial index on confirmed players",
			sql: `CREATE INDEX IF NOT EXISTS idx_registrations_confirmed_game
				ON registrations (game_id)
				WHERE status = 'confirmed'`,
		},
	}

	for _, stmt := range statements {
		if err := m.db.Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create advanced index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are
// logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Registrations and balances are updated in place on every confirm
	for _, table := range []string{"registrations", "user_credits", "games"} {
		if err := m.db.Exec("ALTER TABLE " + table + " SET (fillfactor = 90)").Error; err != nil {
			m.logger.Warn("Failed to set fillfactor", map[string]any{
				"table": table,
				"error": err.Error(),
			})
		}
	}

	if err := m.db.Exec(`ALTER TABLE registrations ALTER COLUMN game_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for registrations.game_id", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
