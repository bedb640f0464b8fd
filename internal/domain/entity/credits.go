package entity

import "time"

// CreditTransactionType classifies a ledger entry
type CreditTransactionType string

const (
	CreditUse             CreditTransactionType = "use"
	CreditRefund          CreditTransactionType = "refund"
	CreditAdminAdjustment CreditTransactionType = "admin_adjustment"
)

// IsValid reports whether t is one of the known ledger entry types
func (t CreditTransactionType) IsValid() bool {
	switch t {
	case CreditUse, CreditRefund, CreditAdminAdjustment:
		return true
	}
	return false
}

// UserCredits is a user's stored-value balance in a single currency
type UserCredits struct {
	UserID    uint64
	Balance   int64 // minor units, never negative
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ZeroCredits is the balance reported for users without a ledger row yet
func ZeroCredits(userID uint64, currency string) *UserCredits {
	return &UserCredits{UserID: userID, Currency: NormalizeCurrency(currency)}
}

// FormattedBalance returns the balance as a decimal string
func (c *UserCredits) FormattedBalance() string {
	return FormatAmount(c.Balance)
}

// CreditTransaction is one append-only ledger entry. Amount is signed: debits
// are negative, so BalanceAfter == BalanceBefore + Amount always holds.
type CreditTransaction struct {
	ID             string
	UserID         uint64
	Amount         int64
	Type           CreditTransactionType
	BalanceBefore  int64
	BalanceAfter   int64
	Currency       string
	RegistrationID *string
	Description    string
	CreatedAt      time.Time
}

// IsConsistent checks the before/after arithmetic of the entry
func (t *CreditTransaction) IsConsistent() bool {
	return t.BalanceAfter == t.BalanceBefore+t.Amount && t.BalanceAfter >= 0
}

// CreditMovement describes a ledger change requested by a caller
type CreditMovement struct {
	UserID         uint64
	Amount         int64 // always positive, the direction comes from the operation
	Currency       string
	Type           CreditTransactionType
	RegistrationID *string
	Description    string
}
