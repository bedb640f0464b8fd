package usecase

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// PaymentSignalResult reports what a gateway signal changed
type PaymentSignalResult struct {
	Kind         entity.PaymentSignalKind
	Registration *entity.Registration
	Released     bool
	Ignored      bool // the signal no longer applies (hold gone or already settled)
}

// PaymentUseCase records the outcome of charges reported by the payment gateway
type PaymentUseCase interface {
	// HandleSignal dispatches a signal to the handler for its kind
	HandleSignal(ctx context.Context, signal entity.PaymentSignal) (*PaymentSignalResult, error)

	// HandlePaymentSuccess confirms the reservation with the reported transaction
	HandlePaymentSuccess(ctx context.Context, signal entity.PaymentSignal) (*PaymentSignalResult, error)

	// HandlePaymentFailure marks the hold as failed without releasing it
	HandlePaymentFailure(ctx context.Context, signal entity.PaymentSignal) (*PaymentSignalResult, error)

	// HandlePaymentComplete releases the hold when the charge did not succeed
	HandlePaymentComplete(ctx context.Context, signal entity.PaymentSignal) (*PaymentSignalResult, error)
}
