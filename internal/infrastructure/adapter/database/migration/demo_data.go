package migration

import (
	"context"
	"errors"
	"time"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
)

// demoGame is a game published on an empty database when seeding is enabled
type demoGame struct {
	id         uint64
	hostID     uint64
	title      string
	maxPlayers int
	price      int64
	startsIn   time.Duration
}

var demoGames = []demoGame{
	{id: 1, hostID: 100, title: "Sunday football", maxPlayers: 10, price: 100000, startsIn: 72 * time.Hour},
	{id: 2, hostID: 100, title: "Evening volleyball", maxPlayers: 1, price: 1000, startsIn: 48 * time.Hour},
	{id: 3, hostID: 101, title: "Open basketball", maxPlayers: 12, price: 0, startsIn: 24 * time.Hour},
}

// Demo players and their starting credits in minor units
var demoCredits = map[uint64]int64{
	1: 50000,
	2: 100000,
	3: 0,
}

// SeedDemoData creates the demo games and opens the demo credit accounts that
// have never been used
func SeedDemoData(
	ctx context.Context,
	games usecase.GameUseCase,
	credits usecase.CreditsUseCase,
	currency string,
	now time.Time,
) error {
	for _, g := range demoGames {
		_, err := games.GetGame(ctx, g.id)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrGameNotFound) {
			return err
		}

		if _, err := games.CreateGame(ctx, usecase.CreateGameRequest{
			HostID:     g.hostID,
			Title:      g.title,
			MaxPlayers: g.maxPlayers,
			Price:      g.price,
			Currency:   currency,
			Datetime:   now.Add(g.startsIn),
		}); err != nil {
			return err
		}
	}

	for userID, amount := range demoCredits {
		if amount <= 0 {
			continue
		}
		// any ledger entry means the account was seeded or used already
		history, err := credits.GetHistory(ctx, userID, 1, 0)
		if err != nil {
			return err
		}
		if len(history) > 0 {
			continue
		}
		if _, err := credits.TopUp(ctx, usecase.TopUpRequest{
			UserID:      userID,
			Amount:      amount,
			Currency:    currency,
			Description: "demo credits",
		}); err != nil {
			return err
		}
	}

	return nil
}
