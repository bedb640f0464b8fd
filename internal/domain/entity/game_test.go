package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/game-booking/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	startsAt := fixedTime.Add(48 * time.Hour)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid paid game", func(t *testing.T) {
		game, err := NewGame(1, "  Sunday football ", 10, 100000, "kzt", startsAt, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Sunday football", game.Title)
		assert.Equal(t, "KZT", game.Currency)
		assert.Equal(t, int64(100000), game.Price)
		assert.Equal(t, "1000.00", game.FormattedPrice())
		assert.False(t, game.IsFree())
		assert.Equal(t, fixedTime, game.CreatedAt)
		assert.Zero(t, game.CurrentPlayersCount)
	})

	t.Run("Free game needs no currency", func(t *testing.T) {
		game, err := NewGame(1, "Pickup", 4, 0, "", startsAt, mockTime)

		require.NoError(t, err)
		assert.True(t, game.IsFree())
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name       string
			hostID     uint64
			title      string
			maxPlayers int
			price      int64
			currency   string
			datetime   time.Time
			expected   error
		}{
			{"Zero host", 0, "Game", 4, 0, "", startsAt, errs.ErrInvalidRequest},
			{"Empty title", 1, "  ", 4, 0, "", startsAt, errs.ErrInvalidRequest},
			{"Zero capacity", 1, "Game", 0, 0, "", startsAt, errs.ErrInvalidRequest},
			{"Negative price", 1, "Game", 4, -1, "KZT", startsAt, errs.ErrInvalidAmount},
			{"Priced without currency", 1, "Game", 4, 500, "", startsAt, errs.ErrInvalidRequest},
			{"Missing datetime", 1, "Game", 4, 0, "", time.Time{}, errs.ErrInvalidRequest},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				game, err := NewGame(tc.hostID, tc.title, tc.maxPlayers, tc.price, tc.currency, tc.datetime, mockTime)
				assert.ErrorIs(t, err, tc.expected)
				assert.Nil(t, game)
			})
		}
	})
}

func TestGameHasStarted(t *testing.T) {
	startsAt := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	game := &Game{Datetime: startsAt}

	assert.False(t, game.HasStarted(startsAt.Add(-time.Minute)))
	assert.False(t, game.HasStarted(startsAt))
	assert.True(t, game.HasStarted(startsAt.Add(time.Second)))
}
