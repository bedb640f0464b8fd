package dto

import (
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// BalanceResponse represents the API response for a user's credits
type BalanceResponse struct {
	UserID   uint64 `json:"userId"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// NewBalanceResponse converts a credits entity
func NewBalanceResponse(credits *entity.UserCredits) BalanceResponse {
	return BalanceResponse{
		UserID:   credits.UserID,
		Balance:  credits.FormattedBalance(),
		Currency: credits.Currency,
	}
}

// TopUpRequest represents a privileged credit adjustment
type TopUpRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// CreditTransactionResponse represents one ledger entry
type CreditTransactionResponse struct {
	ID             string    `json:"id"`
	Amount         string    `json:"amount"`
	Type           string    `json:"type"`
	BalanceBefore  string    `json:"balanceBefore"`
	BalanceAfter   string    `json:"balanceAfter"`
	Currency       string    `json:"currency"`
	RegistrationID *string   `json:"registrationId,omitempty"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// HistoryResponse is a page of ledger entries, newest first
type HistoryResponse struct {
	UserID  uint64                      `json:"userId"`
	Limit   int                         `json:"limit"`
	Offset  int                         `json:"offset"`
	Entries []CreditTransactionResponse `json:"entries"`
}

// NewHistoryResponse converts ledger entries
func NewHistoryResponse(userID uint64, limit, offset int, entries []*entity.CreditTransaction) HistoryResponse {
	resp := HistoryResponse{
		UserID:  userID,
		Limit:   limit,
		Offset:  offset,
		Entries: make([]CreditTransactionResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, CreditTransactionResponse{
			ID:             e.ID,
			Amount:         entity.FormatAmount(e.Amount),
			Type:           string(e.Type),
			BalanceBefore:  entity.FormatAmount(e.BalanceBefore),
			BalanceAfter:   entity.FormatAmount(e.BalanceAfter),
			Currency:       e.Currency,
			RegistrationID: e.RegistrationID,
			Description:    e.Description,
			CreatedAt:      e.CreatedAt,
		})
	}
	return resp
}
