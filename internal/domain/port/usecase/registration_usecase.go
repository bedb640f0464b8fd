package usecase

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// ConfirmRequest carries the payment evidence presented with a confirmation
type ConfirmRequest struct {
	GameID   uint64
	PlayerID uint64
	Evidence entity.PaymentEvidence
}

// ConfirmResult is the confirmed registration and, when one was recorded,
// the payment transaction bound to it
type ConfirmResult struct {
	Registration *entity.Registration
	Transaction  *entity.PaymentTransaction
}

// CancelResult is the cancelled registration and the ledger entry of its refund
type CancelResult struct {
	Registration    *entity.Registration
	RefundReference *string
	RefundAmount    int64
}

// RegistrationUseCase drives registrations between pending, confirmed and cancelled
type RegistrationUseCase interface {
	// ConfirmRegistration promotes a hold (or, for free games, the player) to a confirmed seat
	ConfirmRegistration(ctx context.Context, req ConfirmRequest) (*ConfirmResult, error)

	// CancelRegistration cancels a confirmed seat, refunding paid bookings to credits first
	CancelRegistration(ctx context.Context, gameID, playerID uint64) (*CancelResult, error)

	// GetRegistration returns the player's current non-cancelled registration
	GetRegistration(ctx context.Context, gameID, playerID uint64) (*entity.Registration, error)
}
