package dto

import (
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
)

// RegistrationResponse represents a registration in API responses
type RegistrationResponse struct {
	ID            string     `json:"id"`
	GameID        uint64     `json:"gameId"`
	PlayerID      uint64     `json:"playerId"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewRegistrationResponse converts a registration entity
func NewRegistrationResponse(reg *entity.Registration) *RegistrationResponse {
	if reg == nil {
		return nil
	}
	return &RegistrationResponse{
		ID:            reg.ID,
		GameID:        reg.GameID,
		PlayerID:      reg.PlayerID,
		Status:        string(reg.Status),
		PaymentStatus: string(reg.PaymentStatus),
		ExpiresAt:     reg.ExpiresAt,
		CancelledAt:   reg.CancelledAt,
		CreatedAt:     reg.CreatedAt,
	}
}

// ReservationResponse represents the hold returned by a reservation
type ReservationResponse struct {
	ReservationID string                `json:"reservationId"`
	ExpiresAt     *time.Time            `json:"expiresAt"`
	Reused        bool                  `json:"reused"`
	Registration  *RegistrationResponse `json:"registration"`
}

// NewReservationResponse converts a reservation result
func NewReservationResponse(result *usecase.ReservationResult) ReservationResponse {
	return ReservationResponse{
		ReservationID: result.ReservationID,
		ExpiresAt:     result.ExpiresAt,
		Reused:        result.Reused,
		Registration:  NewRegistrationResponse(result.Registration),
	}
}

// ReleaseResponse reports whether a hold was removed
type ReleaseResponse struct {
	Released bool `json:"released"`
}

// ConfirmRequest carries the payment evidence of a confirmation
type ConfirmRequest struct {
	ReservationID   *string `json:"reservationId"`
	TransactionID   *string `json:"transactionId"`
	Provider        string  `json:"provider"`
	WidgetConfirmed bool    `json:"widgetConfirmed"`
	UseCredits      bool    `json:"useCredits"`
}

// Evidence converts the request into domain payment evidence
func (r ConfirmRequest) Evidence() entity.PaymentEvidence {
	return entity.PaymentEvidence{
		ReservationID:   r.ReservationID,
		TransactionID:   r.TransactionID,
		Provider:        r.Provider,
		WidgetConfirmed: r.WidgetConfirmed,
		UseCredits:      r.UseCredits,
	}
}

// PaymentTransactionResponse represents a recorded charge
type PaymentTransactionResponse struct {
	ID            string `json:"id"`
	Provider      string `json:"provider"`
	TransactionID string `json:"transactionId"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
}

// ConfirmResponse represents a confirmed registration and its charge
type ConfirmResponse struct {
	Registration *RegistrationResponse       `json:"registration"`
	Transaction  *PaymentTransactionResponse `json:"transaction,omitempty"`
}

// NewConfirmResponse converts a confirmation result
func NewConfirmResponse(result *usecase.ConfirmResult) ConfirmResponse {
	resp := ConfirmResponse{Registration: NewRegistrationResponse(result.Registration)}
	if tx := result.Transaction; tx != nil {
		resp.Transaction = &PaymentTransactionResponse{
			ID:            tx.ID,
			Provider:      tx.Provider,
			TransactionID: tx.ExternalTransactionID,
			Amount:        entity.FormatAmount(tx.Amount),
			Currency:      tx.Currency,
			Status:        string(tx.Status),
		}
	}
	return resp
}

// CancelResponse represents a cancellation and its refund
type CancelResponse struct {
	Registration    *RegistrationResponse `json:"registration"`
	RefundAmount    string                `json:"refundAmount"`
	RefundReference *string               `json:"refundReference,omitempty"`
}

// NewCancelResponse converts a cancellation result
func NewCancelResponse(result *usecase.CancelResult) CancelResponse {
	return CancelResponse{
		Registration:    NewRegistrationResponse(result.Registration),
		RefundAmount:    entity.FormatAmount(result.RefundAmount),
		RefundReference: result.RefundReference,
	}
}
