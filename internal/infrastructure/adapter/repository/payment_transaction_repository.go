package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentTransactionRepository implements PaymentTransactionRepository interface using GORM
type PaymentTransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentTransactionRepository creates a new PaymentTransactionRepository instance
func NewPaymentTransactionRepository(db *gorm.DB, logger coreport.Logger) *PaymentTransactionRepository {
	return &PaymentTransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a payment transaction entity to a database model
func (r *PaymentTransactionRepository) entityToModel(tx *entity.PaymentTransaction) model.PaymentTransaction {
	return model.PaymentTransaction{
		ID:                    tx.ID,
		Provider:              tx.Provider,
		ExternalTransactionID: tx.ExternalTransactionID,
		Amount:                tx.Amount,
		Currency:              tx.Currency,
		Status:                string(tx.Status),
		RegistrationID:        tx.RegistrationID,
		CreatedAt:             tx.CreatedAt,
	}
}

// modelToEntity converts a payment transaction model to an entity
func (r *PaymentTransactionRepository) modelToEntity(m *model.PaymentTransaction) *entity.PaymentTransaction {
	return &entity.PaymentTransaction{
		ID:                    m.ID,
		Provider:              m.Provider,
		ExternalTransactionID: m.ExternalTransactionID,
		Amount:                m.Amount,
		Currency:              m.Currency,
		Status:                entity.PaymentTransactionStatus(m.Status),
		RegistrationID:        m.RegistrationID,
		CreatedAt:             m.CreatedAt,
	}
}

// Create inserts the transaction with ON CONFLICT DO NOTHING on
// (provider, external_transaction_id)
func (r *PaymentTransactionRepository) Create(ctx context.Context, tx *entity.PaymentTransaction) (bool, error) {
	txModel := r.entityToModel(tx)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "external_transaction_id"}},
			DoNothing: true,
		}).
		Create(&txModel)
	if result.Error != nil {
		r.logger.Error("Failed to create payment transaction", map[string]any{
			"provider":        tx.Provider,
			"transaction_id":  tx.ExternalTransactionID,
			"registration_id": tx.RegistrationID,
			"error":           result.Error.Error(),
		})
		return false, r.errorClassifier.ToDomainError(result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Payment transaction already recorded", map[string]any{
			"provider":       tx.Provider,
			"transaction_id": tx.ExternalTransactionID,
		})
		return false, nil
	}

	r.logger.Debug("Payment transaction recorded", map[string]any{
		"provider":        tx.Provider,
		"transaction_id":  tx.ExternalTransactionID,
		"registration_id": tx.RegistrationID,
		"amount":          tx.Amount,
	})
	return true, nil
}

// GetByExternalID retrieves a transaction by provider and external id
func (r *PaymentTransactionRepository) GetByExternalID(ctx context.Context, provider, externalID string) (*entity.PaymentTransaction, error) {
	var txModel model.PaymentTransaction
	result := r.db.WithContext(ctx).
		Where("provider = ? AND external_transaction_id = ?", provider, externalID).
		First(&txModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get payment transaction", map[string]any{
			"provider":       provider,
			"transaction_id": externalID,
			"error":          result.Error.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(result.Error)
	}

	return r.modelToEntity(&txModel), nil
}

// ListByRegistration returns every transaction bound to a registration, oldest first
func (r *PaymentTransactionRepository) ListByRegistration(ctx context.Context, registrationID string) ([]*entity.PaymentTransaction, error) {
	var txModels []model.PaymentTransaction
	result := r.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		Order("created_at ASC").
		Find(&txModels)

	if result.Error != nil {
		r.logger.Error("Failed to list payment transactions", map[string]any{
			"registration_id": registrationID,
			"error":           result.Error.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(result.Error)
	}

	transactions := make([]*entity.PaymentTransaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, r.modelToEntity(&txModels[i]))
	}
	return transactions, nil
}
