package dto

import (
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// CreateGameRequest represents the API request for publishing a game.
// HostID defaults to the caller.
type CreateGameRequest struct {
	HostID     uint64    `json:"hostId"`
	Title      string    `json:"title" binding:"required"`
	MaxPlayers int       `json:"maxPlayers" binding:"required,min=1"`
	Price      string    `json:"price" binding:"required"`
	Currency   string    `json:"currency"`
	Datetime   time.Time `json:"datetime" binding:"required"`
}

// GameResponse represents a game in API responses
type GameResponse struct {
	ID                  uint64    `json:"id"`
	HostID              uint64    `json:"hostId"`
	Title               string    `json:"title"`
	MaxPlayers          int       `json:"maxPlayers"`
	Price               string    `json:"price"`
	Currency            string    `json:"currency"`
	Datetime            time.Time `json:"datetime"`
	CurrentPlayersCount int       `json:"currentPlayersCount"`
	IsFree              bool      `json:"isFree"`
}

// NewGameResponse converts a game entity
func NewGameResponse(game *entity.Game) GameResponse {
	return GameResponse{
		ID:                  game.ID,
		HostID:              game.HostID,
		Title:               game.Title,
		MaxPlayers:          game.MaxPlayers,
		Price:               game.FormattedPrice(),
		Currency:            game.Currency,
		Datetime:            game.Datetime,
		CurrentPlayersCount: game.CurrentPlayersCount,
		IsFree:              game.IsFree(),
	}
}

// OccupancyResponse represents the occupancy of a game
type OccupancyResponse struct {
	GameID         uint64 `json:"gameId"`
	MaxPlayers     int    `json:"maxPlayers"`
	ConfirmedCount int    `json:"confirmedCount"`
	PendingCount   int    `json:"pendingCount"`
	SpotsLeft      int    `json:"spotsLeft"`
}

// NewOccupancyResponse converts an occupancy snapshot
func NewOccupancyResponse(o *entity.Occupancy) OccupancyResponse {
	return OccupancyResponse{
		GameID:         o.GameID,
		MaxPlayers:     o.MaxPlayers,
		ConfirmedCount: o.ConfirmedCount,
		PendingCount:   o.PendingCount,
		SpotsLeft:      o.SpotsLeft,
	}
}
