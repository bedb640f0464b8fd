package usecase

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// TopUpRequest is a privileged credit adjustment
type TopUpRequest struct {
	UserID      uint64
	Amount      int64
	Currency    string
	Description string
}

// CreditsUseCase exposes the credits ledger to API callers
type CreditsUseCase interface {
	// TopUp credits the user's balance with an admin_adjustment entry
	TopUp(ctx context.Context, req TopUpRequest) (*entity.UserCredits, error)

	// GetBalance returns the user's balance; users without a row report zero
	GetBalance(ctx context.Context, userID uint64) (*entity.UserCredits, error)

	// GetHistory returns ledger entries newest first
	GetHistory(ctx context.Context, userID uint64, limit, offset int) ([]*entity.CreditTransaction, error)
}

// CreditsLedger applies balance movements inside the caller's unit of work.
// ctx must carry the transaction started by UnitOfWork.Begin, so the balance
// change, its ledger entry and the caller's own writes commit together.
type CreditsLedger interface {
	// Debit decrements the balance by movement.Amount and records a negative entry
	Debit(ctx context.Context, movement entity.CreditMovement) (*entity.CreditTransaction, error)

	// Credit increments the balance by movement.Amount, opening the account on first use
	Credit(ctx context.Context, movement entity.CreditMovement) (*entity.CreditTransaction, error)
}
