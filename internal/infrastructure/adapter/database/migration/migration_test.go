package migration_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/credits"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/game"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/unitofwork"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/idgen"
	applogger "github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/model"
	apptime "github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrationNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *database.TestDBManager {
	t.Helper()
	return database.NewTestDBManager(t, applogger.NewNoopLogger(), apptime.NewManualTimeProvider(migrationNow))
}

func insertRegistration(t *testing.T, db *database.TestDBManager, id string, gameID, playerID uint64, status entity.RegistrationStatus) {
	t.Helper()

	reg := model.Registration{
		ID:            id,
		GameID:        gameID,
		PlayerID:      playerID,
		Status:        string(status),
		PaymentStatus: string(entity.PaymentPaid),
		CreatedAt:     migrationNow,
		UpdatedAt:     migrationNow,
	}
	if status == entity.RegistrationPending {
		expiresAt := migrationNow.Add(5 * time.Minute)
		reg.ExpiresAt = &expiresAt
		reg.PaymentStatus = string(entity.PaymentPending)
	}
	require.NoError(t, db.Manager.DB().Create(&reg).Error)
}

func playersCount(t *testing.T, db *database.TestDBManager, gameID uint64) int {
	t.Helper()
	var count int
	require.NoError(t, db.Manager.DB().Raw("SELECT current_players_count FROM games WHERE id = ?", gameID).Scan(&count).Error)
	return count
}

func TestMigrateAll_ReconcilesPlayersCountOnEveryStart(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	ctx := context.Background()
	gameID := db.CreateTestGame(t, 10, 0, "KZT", migrationNow.Add(24*time.Hour))

	insertRegistration(t, db, "reg-confirmed", gameID, 1, entity.RegistrationConfirmed)
	insertRegistration(t, db, "reg-pending", gameID, 2, entity.RegistrationPending)
	insertRegistration(t, db, "reg-cancelled", gameID, 3, entity.RegistrationCancelled)
	require.NoError(t, db.Manager.DB().Exec("UPDATE games SET current_players_count = 99 WHERE id = ?", gameID).Error)

	// Act
	err := db.Manager.Migrate(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, playersCount(t, db, gameID))
	assert.Equal(t, int64(1), db.CountRows(t, "migration_versions", "version = ?", migration.CurrentSchemaVersion))

	version, err := migration.NewMigrationManager(db.Manager.DB(), applogger.NewNoopLogger()).GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)
}

func TestReconcilePlayersCount_Run(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	emptyGame := db.CreateTestGame(t, 4, 0, "KZT", migrationNow.Add(24*time.Hour))
	fullGame := db.CreateTestGame(t, 2, 0, "KZT", migrationNow.Add(24*time.Hour))

	insertRegistration(t, db, "reg-1", fullGame, 1, entity.RegistrationConfirmed)
	insertRegistration(t, db, "reg-2", fullGame, 2, entity.RegistrationConfirmed)
	require.NoError(t, db.Manager.DB().Exec("UPDATE games SET current_players_count = 3").Error)

	reconcile := migration.NewReconcilePlayersCount(db.Manager.DB(), applogger.NewNoopLogger())
	require.NoError(t, reconcile.Run(ctx))
	require.NoError(t, reconcile.Run(ctx))

	assert.Equal(t, 0, playersCount(t, db, emptyGame))
	assert.Equal(t, 2, playersCount(t, db, fullGame))
}

func TestSeedDemoData(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	logger := applogger.NewNoopLogger()
	clock := apptime.NewManualTimeProvider(migrationNow)

	uow := db.Manager.CreateUnitOfWork()
	runner := unitofwork.NewRunner(uow, logger, 3).WithBackoff(time.Millisecond)
	ledger := credits.NewLedger(uow, idgen.NewUUIDGenerator(), clock, logger)
	creditsService := credits.NewService(runner, uow, ledger, "KZT", logger)
	gameService := game.NewService(uow, clock, logger)

	require.NoError(t, migration.SeedDemoData(ctx, gameService, creditsService, "KZT", migrationNow))

	assert.Equal(t, int64(3), db.CountRows(t, "games", ""))
	balance, err := creditsService.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), balance.Balance)
	assert.Equal(t, int64(0), db.CountRows(t, "user_credits", "user_id = ?", 3))

	t.Run("a spent balance is not topped up again", func(t *testing.T) {
		clock.Advance(time.Second)
		require.NoError(t, runner.Do(ctx, "spend_demo_credits", func(txCtx context.Context) error {
			_, err := ledger.Debit(txCtx, entity.CreditMovement{UserID: 1, Amount: 50000, Currency: "KZT"})
			return err
		}))

		require.NoError(t, migration.SeedDemoData(ctx, gameService, creditsService, "KZT", migrationNow))

		balance, err := creditsService.GetBalance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance.Balance)
		assert.Equal(t, int64(2), db.CountRows(t, "credit_transactions", "user_id = ?", 1))
		assert.Equal(t, int64(3), db.CountRows(t, "games", ""))
	})
}
