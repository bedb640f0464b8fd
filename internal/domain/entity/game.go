package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
)

// Game is a bookable sports event with a fixed number of seats
type Game struct {
	ID         uint64
	HostID     uint64
	Title      string
	MaxPlayers int
	Price      int64 // minor units, 0 means free
	Currency   string
	Datetime   time.Time // start time, no holds may be created after it

	// CurrentPlayersCount is a cache of confirmed registrations. It is maintained
	// alongside every confirm and cancel but is never used for admission decisions.
	CurrentPlayersCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGame validates and creates a game that has not been persisted yet
func NewGame(
	hostID uint64,
	title string,
	maxPlayers int,
	price int64,
	currency string,
	datetime time.Time,
	timeProvider coreport.TimeProvider,
) (*Game, error) {
	title = strings.TrimSpace(title)
	currency = NormalizeCurrency(currency)

	switch {
	case hostID == 0:
		return nil, fmt.Errorf("%w: host ID must be positive", errs.ErrInvalidRequest)
	case title == "":
		return nil, fmt.Errorf("%w: title is required", errs.ErrInvalidRequest)
	case maxPlayers <= 0:
		return nil, fmt.Errorf("%w: maxPlayers must be positive", errs.ErrInvalidRequest)
	case price < 0:
		return nil, fmt.Errorf("%w: price cannot be negative", errs.ErrInvalidAmount)
	case price > 0 && currency == "":
		return nil, fmt.Errorf("%w: currency is required for priced games", errs.ErrInvalidRequest)
	case datetime.IsZero():
		return nil, fmt.Errorf("%w: datetime is required", errs.ErrInvalidRequest)
	}

	now := timeProvider.Now()
	return &Game{
		HostID:     hostID,
		Title:      title,
		MaxPlayers: maxPlayers,
		Price:      price,
		Currency:   currency,
		Datetime:   datetime,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// IsFree reports whether the game bypasses the hold and payment steps
func (g *Game) IsFree() bool {
	return g.Price == 0
}

// HasStarted reports whether the game start time is already behind now
func (g *Game) HasStarted(now time.Time) bool {
	return now.After(g.Datetime)
}

// FormattedPrice returns the price as a decimal string
func (g *Game) FormattedPrice() string {
	return FormatAmount(g.Price)
}
