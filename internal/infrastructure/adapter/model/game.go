package model

import (
	"time"
)

// Game represents the database model for games
type Game struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement"`
	HostID              uint64    `gorm:"not null;index"`
	Title               string    `gorm:"not null;size:255"`
	MaxPlayers          int       `gorm:"not null"`
	Price               int64     `gorm:"not null;default:0"` // Price in minor units
	Currency            string    `gorm:"size:3"`
	Datetime            time.Time `gorm:"not null;index"`
	CurrentPlayersCount int       `gorm:"not null;default:0"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName specifies the table name for Game
func (Game) TableName() string {
	return "games"
}
