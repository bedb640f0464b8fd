package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CreditsRepository implements CreditsRepository interface using GORM.
// Balance changes are single conditional statements so that the non-negative
// invariant is enforced by the row update itself.
type CreditsRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCreditsRepository creates a new CreditsRepository instance
func NewCreditsRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CreditsRepository {
	return &CreditsRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *CreditsRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error("Database error when "+operation, map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return r.errorClassifier.ToDomainError(err)
}

// Get retrieves the balance row of a user
func (r *CreditsRepository) Get(ctx context.Context, userID uint64) (*entity.UserCredits, error) {
	var creditsModel model.UserCredits
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&creditsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCreditsNotFound
		}
		return nil, r.handleDatabaseError("getting credits", result.Error, userID)
	}

	return &entity.UserCredits{
		UserID:    creditsModel.UserID,
		Balance:   creditsModel.Balance,
		Currency:  creditsModel.Currency,
		CreatedAt: creditsModel.CreatedAt,
		UpdatedAt: creditsModel.UpdatedAt,
	}, nil
}

// Decrement subtracts amount only when the row holds enough in the same currency
func (r *CreditsRepository) Decrement(ctx context.Context, userID uint64, currency string, amount int64) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.UserCredits{}).
		Where("user_id = ? AND currency = ? AND balance >= ?", userID, currency, amount).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("decrementing credits", result.Error, userID)
	}

	applied := result.RowsAffected == 1
	r.logger.Debug("Credits decrement evaluated", map[string]any{
		"user_id":  userID,
		"amount":   amount,
		"currency": currency,
		"applied":  applied,
	})
	return applied, nil
}

// IncrementOrCreate upserts the balance row. The conflict update is guarded by
// the currency and by the int64 range, so a row held in another currency or one
// the amount would overflow is left untouched.
func (r *CreditsRepository) IncrementOrCreate(ctx context.Context, userID uint64, currency string, amount int64) (bool, error) {
	if amount < 0 {
		return false, fmt.Errorf("%w: increment must not be negative", errs.ErrInvalidAmount)
	}
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO user_credits (user_id, balance, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = user_credits.balance + EXCLUDED.balance,
		    updated_at = EXCLUDED.updated_at
		WHERE user_credits.currency = EXCLUDED.currency
		  AND user_credits.balance <= ?`,
		userID, amount, currency, now, now,
		math.MaxInt64-amount,
	)
	if result.Error != nil {
		return false, r.handleDatabaseError("incrementing credits", result.Error, userID)
	}

	applied := result.RowsAffected == 1
	r.logger.Debug("Credits increment evaluated", map[string]any{
		"user_id":  userID,
		"amount":   amount,
		"currency": currency,
		"applied":  applied,
	})
	return applied, nil
}

// AppendTransaction writes a ledger entry
func (r *CreditsRepository) AppendTransaction(ctx context.Context, tx *entity.CreditTransaction) error {
	txModel := model.CreditTransaction{
		ID:             tx.ID,
		UserID:         tx.UserID,
		Amount:         tx.Amount,
		Type:           string(tx.Type),
		BalanceBefore:  tx.BalanceBefore,
		BalanceAfter:   tx.BalanceAfter,
		Currency:       tx.Currency,
		RegistrationID: tx.RegistrationID,
		Description:    tx.Description,
		CreatedAt:      tx.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&txModel).Error; err != nil {
		return r.handleDatabaseError("appending credit transaction", err, tx.UserID)
	}
	return nil
}

// ListTransactions returns ledger entries of a user, newest first
func (r *CreditsRepository) ListTransactions(ctx context.Context, userID uint64, limit, offset int) ([]*entity.CreditTransaction, error) {
	var txModels []model.CreditTransaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&txModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing credit transactions", result.Error, userID)
	}

	transactions := make([]*entity.CreditTransaction, 0, len(txModels))
	for _, m := range txModels {
		transactions = append(transactions, &entity.CreditTransaction{
			ID:             m.ID,
			UserID:         m.UserID,
			Amount:         m.Amount,
			Type:           entity.CreditTransactionType(m.Type),
			BalanceBefore:  m.BalanceBefore,
			BalanceAfter:   m.BalanceAfter,
			Currency:       m.Currency,
			RegistrationID: m.RegistrationID,
			Description:    m.Description,
			CreatedAt:      m.CreatedAt,
		})
	}
	return transactions, nil
}

// SumTransactions returns the sum of all signed ledger amounts of a user
func (r *CreditsRepository) SumTransactions(ctx context.Context, userID uint64) (int64, error) {
	var sum int64
	result := r.db.WithContext(ctx).Model(&model.CreditTransaction{}).
		Select("CAST(COALESCE(SUM(amount), 0) AS BIGINT)").
		Where("user_id = ?", userID).
		Scan(&sum)
	if result.Error != nil {
		return 0, r.handleDatabaseError("summing credit transactions", result.Error, userID)
	}
	return sum, nil
}
