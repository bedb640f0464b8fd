package dto

import (
	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
)

// PaymentEventRequest represents a payment gateway callback
type PaymentEventRequest struct {
	Kind          string `json:"kind" binding:"required,oneof=success failure complete"`
	GameID        uint64 `json:"gameId" binding:"required"`
	PlayerID      uint64 `json:"playerId" binding:"required"`
	ReservationID string `json:"reservationId"`
	TransactionID string `json:"transactionId"`
	Provider      string `json:"provider"`
	Success       bool   `json:"success"`
	Reason        string `json:"reason"`
}

// Signal converts the request into a domain payment signal
func (r PaymentEventRequest) Signal() entity.PaymentSignal {
	return entity.PaymentSignal{
		Kind:          entity.PaymentSignalKind(r.Kind),
		GameID:        r.GameID,
		PlayerID:      r.PlayerID,
		ReservationID: r.ReservationID,
		TransactionID: r.TransactionID,
		Provider:      r.Provider,
		Success:       r.Success,
		Reason:        r.Reason,
	}
}

// PaymentEventResponse reports what a gateway callback changed
type PaymentEventResponse struct {
	Kind         string                `json:"kind"`
	Ignored      bool                  `json:"ignored"`
	Released     bool                  `json:"released"`
	Registration *RegistrationResponse `json:"registration,omitempty"`
}

// NewPaymentEventResponse converts a signal result
func NewPaymentEventResponse(result *usecase.PaymentSignalResult) PaymentEventResponse {
	return PaymentEventResponse{
		Kind:         string(result.Kind),
		Ignored:      result.Ignored,
		Released:     result.Released,
		Registration: NewRegistrationResponse(result.Registration),
	}
}
