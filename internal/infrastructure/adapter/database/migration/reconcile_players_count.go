package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ReconcilePlayersCount rebuilds games.current_players_count from the
// confirmed registrations. The column is a cache and may drift if it was
// edited by hand or written by an older release.
type ReconcilePlayersCount struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewReconcilePlayersCount creates a new migration instance
func NewReconcilePlayersCount(db *gorm.DB, logger coreport.Logger) *ReconcilePlayersCount {
	return &ReconcilePlayersCount{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *ReconcilePlayersCount) Run(ctx context.Context) error {
	migrator := m.db.WithContext(ctx).Migrator()
	if !migrator.HasColumn(&model.Game{}, "current_players_count") {
		if err := migrator.AddColumn(&model.Game{}, "CurrentPlayersCount"); err != nil {
			m.logger.Error("Failed to add current_players_count column", map[string]any{"error": err.Error()})
			return err
		}
	}

	result := m.db.WithContext(ctx).Exec(`
		UPDATE games
		SET current_players_count = (
			SELECT COUNT(*) FROM registrations
			WHERE registrations.game_id = games.id AND registrations.status = 'confirmed'
		)`)
	if result.Error != nil {
		m.logger.Error("Failed to reconcile players count", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Players count reconciled", map[string]any{
		"games_updated": result.RowsAffected,
	})
	return nil
}
