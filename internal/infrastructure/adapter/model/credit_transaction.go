package model

import (
	"time"
)

// CreditTransaction is an append-only ledger entry
type CreditTransaction struct {
	ID             string    `gorm:"primaryKey;size:36"`
	UserID         uint64    `gorm:"not null;index:idx_credit_transactions_user_created,priority:1"`
	Amount         int64     `gorm:"not null"` // Signed, negative for debits
	Type           string    `gorm:"not null;size:30"`
	BalanceBefore  int64     `gorm:"not null"`
	BalanceAfter   int64     `gorm:"not null"`
	Currency       string    `gorm:"not null;size:3"`
	RegistrationID *string   `gorm:"size:36;index"`
	Description    string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null;index:idx_credit_transactions_user_created,priority:2"`
}

// TableName specifies the table name for CreditTransaction
func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
