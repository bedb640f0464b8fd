package entity

import "strings"

// PaymentEvidence is what a client presents when confirming a paid registration
type PaymentEvidence struct {
	ReservationID   *string
	TransactionID   *string
	Provider        string
	WidgetConfirmed bool
	UseCredits      bool
}

// DefaultPaymentProvider is assumed when a transaction id arrives without a provider
const DefaultPaymentProvider = "kaspi"

// HasTransaction reports whether a non-empty external transaction id was supplied
func (e PaymentEvidence) HasTransaction() bool {
	return e.TransactionID != nil && strings.TrimSpace(*e.TransactionID) != ""
}

// HasPayment reports whether any form of payment evidence is present
func (e PaymentEvidence) HasPayment() bool {
	return e.HasTransaction() || e.WidgetConfirmed || e.UseCredits
}

// ProviderOrDefault returns the provider name used to key the transaction
func (e PaymentEvidence) ProviderOrDefault() string {
	if p := strings.TrimSpace(e.Provider); p != "" {
		return strings.ToLower(p)
	}
	return DefaultPaymentProvider
}
