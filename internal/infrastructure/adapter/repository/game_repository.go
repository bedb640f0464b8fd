package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository implements GameRepository interface using GORM
type GameRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGameRepository creates a new GameRepository instance
func NewGameRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *GameRepository {
	return &GameRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func gameModelToEntity(m *model.Game) *entity.Game {
	return &entity.Game{
		ID:                  m.ID,
		HostID:              m.HostID,
		Title:               m.Title,
		MaxPlayers:          m.MaxPlayers,
		Price:               m.Price,
		Currency:            m.Currency,
		Datetime:            m.Datetime.UTC(),
		CurrentPlayersCount: m.CurrentPlayersCount,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *GameRepository) handleDatabaseError(operation string, err error, gameID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Game not found", map[string]any{
			"game_id": gameID,
		})
		return errs.ErrGameNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"game_id": gameID,
		"error":   err.Error(),
	})
	return r.errorClassifier.ToDomainError(err)
}

// Create stores a new game and assigns its ID
func (r *GameRepository) Create(ctx context.Context, game *entity.Game) error {
	gameModel := model.Game{
		HostID:              game.HostID,
		Title:               game.Title,
		MaxPlayers:          game.MaxPlayers,
		Price:               game.Price,
		Currency:            game.Currency,
		Datetime:            game.Datetime.UTC(),
		CurrentPlayersCount: game.CurrentPlayersCount,
		CreatedAt:           game.CreatedAt,
		UpdatedAt:           game.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&gameModel).Error; err != nil {
		return r.handleDatabaseError("creating game", err, 0)
	}

	game.ID = gameModel.ID
	r.logger.Info("Game created", map[string]any{
		"game_id":     game.ID,
		"host_id":     game.HostID,
		"max_players": game.MaxPlayers,
		"price":       game.FormattedPrice(),
	})
	return nil
}

// GetByID retrieves a game without locking it
func (r *GameRepository) GetByID(ctx context.Context, id uint64) (*entity.Game, error) {
	var gameModel model.Game
	if err := r.db.WithContext(ctx).First(&gameModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting game", err, id)
	}
	return gameModelToEntity(&gameModel), nil
}

// GetForUpdate retrieves a game with SELECT ... FOR UPDATE. SQLite has no
// row locks, its dialector drops the clause and relies on the database lock.
func (r *GameRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Game, error) {
	var gameModel model.Game
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&gameModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking game", result.Error, id)
	}

	r.logger.Debug("Game locked", map[string]any{
		"game_id": id,
	})
	return gameModelToEntity(&gameModel), nil
}

// AdjustPlayersCount moves the cached counter by delta and floors it at zero
func (r *GameRepository) AdjustPlayersCount(ctx context.Context, id uint64, delta int) error {
	result := r.db.WithContext(ctx).Model(&model.Game{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_players_count": gorm.Expr(
				"CASE WHEN current_players_count + ? < 0 THEN 0 ELSE current_players_count + ? END", delta, delta),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("adjusting players count", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrGameNotFound
	}

	r.logger.Debug("Players count adjusted", map[string]any{
		"game_id": id,
		"delta":   delta,
	})
	return nil
}
