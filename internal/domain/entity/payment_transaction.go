package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
)

// PaymentTransactionStatus is the state of an external charge
type PaymentTransactionStatus string

const (
	PaymentTransactionSucceeded PaymentTransactionStatus = "succeeded"
	PaymentTransactionFailed    PaymentTransactionStatus = "failed"
)

// CreditsProvider is the provider name recorded when a confirmation is paid from credits
const CreditsProvider = "credits"

// PaymentTransaction records an external (or credits) charge bound to exactly one
// registration. (Provider, ExternalTransactionID) is unique across the system.
type PaymentTransaction struct {
	ID                    string
	Provider              string
	ExternalTransactionID string
	Amount                int64
	Currency              string
	Status                PaymentTransactionStatus
	RegistrationID        string
	CreatedAt             time.Time
}

// NewPaymentTransaction validates and builds a succeeded payment record
func NewPaymentTransaction(
	id, provider, externalID string,
	amount int64,
	currency, registrationID string,
	now time.Time,
) (*PaymentTransaction, error) {
	provider = strings.TrimSpace(provider)
	externalID = strings.TrimSpace(externalID)

	if provider == "" || externalID == "" {
		return nil, fmt.Errorf("%w: provider and transaction ID are required", errs.ErrInvalidRequest)
	}
	if registrationID == "" {
		return nil, fmt.Errorf("%w: registration ID is required", errs.ErrInvalidRequest)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: payment amount cannot be negative", errs.ErrInvalidAmount)
	}

	return &PaymentTransaction{
		ID:                    id,
		Provider:              provider,
		ExternalTransactionID: externalID,
		Amount:                amount,
		Currency:              NormalizeCurrency(currency),
		Status:                PaymentTransactionSucceeded,
		RegistrationID:        registrationID,
		CreatedAt:             now,
	}, nil
}

// IsBoundTo reports whether the transaction already belongs to registrationID
func (p *PaymentTransaction) IsBoundTo(registrationID string) bool {
	return p.RegistrationID == registrationID
}
