package model

import (
	"time"
)

// PaymentTransaction represents an external charge bound to a registration
type PaymentTransaction struct {
	ID                    string    `gorm:"primaryKey;size:36"`
	Provider              string    `gorm:"not null;size:50;uniqueIndex:idx_payment_transactions_provider_external,priority:1"`
	ExternalTransactionID string    `gorm:"not null;size:255;uniqueIndex:idx_payment_transactions_provider_external,priority:2"`
	Amount                int64     `gorm:"not null"`
	Currency              string    `gorm:"size:3"`
	Status                string    `gorm:"not null;size:20"`
	RegistrationID        string    `gorm:"not null;size:36;index"`
	CreatedAt             time.Time `gorm:"not null"`
}

// TableName specifies the table name for PaymentTransaction
func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
