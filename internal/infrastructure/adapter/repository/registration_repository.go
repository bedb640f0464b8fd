package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// RegistrationRepository implements RegistrationRepository interface using GORM
type RegistrationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRegistrationRepository creates a new RegistrationRepository instance
func NewRegistrationRepository(db *gorm.DB, logger coreport.Logger) *RegistrationRepository {
	return &RegistrationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

type reservedCounts struct {
	Confirmed int
	Pending   int
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func (r *RegistrationRepository) entityToModel(reg *entity.Registration) model.Registration {
	return model.Registration{
		ID:            reg.ID,
		GameID:        reg.GameID,
		PlayerID:      reg.PlayerID,
		Status:        string(reg.Status),
		PaymentStatus: string(reg.PaymentStatus),
		ExpiresAt:     utcPtr(reg.ExpiresAt),
		CancelledAt:   utcPtr(reg.CancelledAt),
		CreatedAt:     reg.CreatedAt,
		UpdatedAt:     reg.UpdatedAt,
	}
}

func (r *RegistrationRepository) modelToEntity(m *model.Registration) *entity.Registration {
	return &entity.Registration{
		ID:            m.ID,
		GameID:        m.GameID,
		PlayerID:      m.PlayerID,
		Status:        entity.RegistrationStatus(m.Status),
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		ExpiresAt:     utcPtr(m.ExpiresAt),
		CancelledAt:   utcPtr(m.CancelledAt),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *RegistrationRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrRegistrationNotFound
	}

	fields["error"] = err.Error()
	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn(fmt.Sprintf("Unique constraint hit when %s", operation), fields)
		return fmt.Errorf("%w: %s", errs.ErrConcurrentUpdate, err.Error())
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return r.errorClassifier.ToDomainError(err)
}

// GetActive returns the non-cancelled registration of a player for a game
func (r *RegistrationRepository) GetActive(ctx context.Context, gameID, playerID uint64) (*entity.Registration, error) {
	var regModel model.Registration
	result := r.db.WithContext(ctx).
		Where("game_id = ? AND player_id = ? AND status <> ?", gameID, playerID, string(entity.RegistrationCancelled)).
		First(&regModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting active registration", result.Error, map[string]any{
			"game_id":   gameID,
			"player_id": playerID,
		})
	}
	return r.modelToEntity(&regModel), nil
}

// GetByID retrieves a registration by its ID
func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*entity.Registration, error) {
	var regModel model.Registration
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&regModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting registration", err, map[string]any{
			"registration_id": id,
		})
	}
	return r.modelToEntity(&regModel), nil
}

// Create stores a new registration. The partial unique index turns a racing
// second insert for the same (game, player) into ErrConcurrentUpdate.
func (r *RegistrationRepository) Create(ctx context.Context, reg *entity.Registration) error {
	regModel := r.entityToModel(reg)
	if err := r.db.WithContext(ctx).Create(&regModel).Error; err != nil {
		return r.handleDatabaseError("creating registration", err, map[string]any{
			"registration_id": reg.ID,
			"game_id":         reg.GameID,
			"player_id":       reg.PlayerID,
		})
	}

	r.logger.Debug("Registration created", map[string]any{
		"registration_id": reg.ID,
		"game_id":         reg.GameID,
		"player_id":       reg.PlayerID,
		"status":          reg.Status,
	})
	return nil
}

// Update persists status, payment status and expiry changes
func (r *RegistrationRepository) Update(ctx context.Context, reg *entity.Registration) error {
	result := r.db.WithContext(ctx).Model(&model.Registration{}).
		Where("id = ?", reg.ID).
		Updates(map[string]any{
			"status":         string(reg.Status),
			"payment_status": string(reg.PaymentStatus),
			"expires_at":     utcPtr(reg.ExpiresAt),
			"cancelled_at":   utcPtr(reg.CancelledAt),
			"updated_at":     reg.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating registration", result.Error, map[string]any{
			"registration_id": reg.ID,
		})
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Registration not found during update", map[string]any{
			"registration_id": reg.ID,
		})
		return errs.ErrRegistrationNotFound
	}

	r.logger.Debug("Registration updated", map[string]any{
		"registration_id": reg.ID,
		"status":          reg.Status,
		"payment_status":  reg.PaymentStatus,
	})
	return nil
}

// DeletePending removes the pending hold of a player, optionally only the one
// with reservationID
func (r *RegistrationRepository) DeletePending(ctx context.Context, gameID, playerID uint64, reservationID string) (string, error) {
	fields := map[string]any{
		"game_id":        gameID,
		"player_id":      playerID,
		"reservation_id": reservationID,
	}

	query := r.db.WithContext(ctx).
		Where("game_id = ? AND player_id = ? AND status = ?", gameID, playerID, string(entity.RegistrationPending))
	if reservationID != "" {
		query = query.Where("id = ?", reservationID)
	}

	var regModel model.Registration
	if err := query.First(&regModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", r.handleDatabaseError("finding pending registration", err, fields)
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", regModel.ID, string(entity.RegistrationPending)).
		Delete(&model.Registration{})
	if result.Error != nil {
		return "", r.handleDatabaseError("deleting pending registration", result.Error, fields)
	}
	if result.RowsAffected == 0 {
		return "", nil
	}

	r.logger.Debug("Pending registration deleted", map[string]any{
		"registration_id": regModel.ID,
		"game_id":         gameID,
		"player_id":       playerID,
	})
	return regModel.ID, nil
}

// CountReserved returns confirmed registrations and live holds of a game at now
func (r *RegistrationRepository) CountReserved(ctx context.Context, gameID uint64, now time.Time) (int, int, error) {
	var counts reservedCounts
	result := r.db.WithContext(ctx).Model(&model.Registration{}).
		Select(
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS confirmed, "+
				"COALESCE(SUM(CASE WHEN status = ? AND expires_at > ? THEN 1 ELSE 0 END), 0) AS pending",
			string(entity.RegistrationConfirmed), string(entity.RegistrationPending), now.UTC(),
		).
		Where("game_id = ? AND status <> ?", gameID, string(entity.RegistrationCancelled)).
		Scan(&counts)
	if result.Error != nil {
		return 0, 0, r.handleDatabaseError("counting reserved seats", result.Error, map[string]any{
			"game_id": gameID,
		})
	}
	return counts.Confirmed, counts.Pending, nil
}

// DeleteExpiredPending removes up to limit holds whose expiry is before the given instant
func (r *RegistrationRepository) DeleteExpiredPending(ctx context.Context, before time.Time, limit int) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM registrations
		WHERE id IN (
			SELECT id FROM registrations
			WHERE status = ? AND expires_at < ?
			ORDER BY expires_at
			LIMIT ?
		)`,
		string(entity.RegistrationPending), before.UTC(), limit,
	)
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting expired holds", result.Error, map[string]any{
			"before": before,
			"limit":  limit,
		})
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired holds removed", map[string]any{
			"removed": result.RowsAffected,
			"before":  before,
		})
	}
	return result.RowsAffected, nil
}
