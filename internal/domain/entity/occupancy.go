package entity

// Occupancy is a point-in-time view of how many seats of a game are taken.
// Confirmed registrations and unexpired pending holds both consume capacity.
type Occupancy struct {
	GameID         uint64 `json:"gameId"`
	MaxPlayers     int    `json:"maxPlayers"`
	ConfirmedCount int    `json:"confirmedCount"`
	PendingCount   int    `json:"pendingCount"`
	SpotsLeft      int    `json:"spotsLeft"`
}

// NewOccupancy derives SpotsLeft, floored at zero
func NewOccupancy(gameID uint64, maxPlayers, confirmed, pending int) Occupancy {
	spotsLeft := maxPlayers - confirmed - pending
	if spotsLeft < 0 {
		spotsLeft = 0
	}
	return Occupancy{
		GameID:         gameID,
		MaxPlayers:     maxPlayers,
		ConfirmedCount: confirmed,
		PendingCount:   pending,
		SpotsLeft:      spotsLeft,
	}
}

// ReservedCount is the number of seats consumed
func (o Occupancy) ReservedCount() int {
	return o.ConfirmedCount + o.PendingCount
}

// HasHeadroom reports whether one more seat can be taken
func (o Occupancy) HasHeadroom() bool {
	return o.ReservedCount() < o.MaxPlayers
}
