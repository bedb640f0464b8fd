package model

import (
	"time"
)

// UserCredits holds the current credits balance of a user
type UserCredits struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false"`
	Balance   int64     `gorm:"not null;default:0;check:chk_user_credits_balance_non_negative,balance >= 0"` // Balance in minor units
	Currency  string    `gorm:"not null;size:3"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserCredits
func (UserCredits) TableName() string {
	return "user_credits"
}
