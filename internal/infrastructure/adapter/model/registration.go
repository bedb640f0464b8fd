package model

import (
	"time"
)

// Registration represents the database model for registrations.
// The partial unique index on (game_id, player_id) for non-cancelled rows is
// created by the migration manager.
type Registration struct {
	ID            string     `gorm:"primaryKey;size:36"`
	GameID        uint64     `gorm:"not null;index:idx_registrations_game_status,priority:1"`
	PlayerID      uint64     `gorm:"not null;index"`
	Status        string     `gorm:"not null;size:20;index:idx_registrations_game_status,priority:2"`
	PaymentStatus string     `gorm:"not null;size:20"`
	ExpiresAt     *time.Time `gorm:"index"`
	CancelledAt   *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Registration
func (Registration) TableName() string {
	return "registrations"
}
