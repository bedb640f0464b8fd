package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/game-booking/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/game-booking/mocks/port/persistence"
)

func TestService_CreateGame(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	validRequest := usecase.CreateGameRequest{
		HostID:     1,
		Title:      "  Sunday volleyball ",
		MaxPlayers: 12,
		Price:      200000,
		Currency:   "kzt",
		Datetime:   now.Add(72 * time.Hour),
	}

	setup := func(t *testing.T) (*Service, *persistencemocks.MockGameRepository, *coremocks.MockLogger) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		games := persistencemocks.NewMockGameRepository(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		uow.EXPECT().GetGameRepository(ctx).Return(games).Maybe()
		timeProvider.EXPECT().Now().Return(now).Maybe()
		return NewService(uow, timeProvider, logger), games, logger
	}

	t.Run("stores a normalized game", func(t *testing.T) {
		// Arrange
		service, games, logger := setup(t)
		games.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Game")).
			RunAndReturn(func(_ context.Context, g *entity.Game) error {
				g.ID = 42
				return nil
			}).Once()
		logger.EXPECT().Info("Game created", mock.Anything).Once()

		// Act
		game, err := service.CreateGame(ctx, validRequest)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(42), game.ID)
		assert.Equal(t, "Sunday volleyball", game.Title)
		assert.Equal(t, "KZT", game.Currency)
		assert.Equal(t, now, game.CreatedAt)
		assert.Equal(t, 0, game.CurrentPlayersCount)
	})

	t.Run("validation failures never reach the repository", func(t *testing.T) {
		invalid := []struct {
			name   string
			mutate func(r *usecase.CreateGameRequest)
			want   error
		}{
			{"zero capacity", func(r *usecase.CreateGameRequest) { r.MaxPlayers = 0 }, errs.ErrInvalidRequest},
			{"negative price", func(r *usecase.CreateGameRequest) { r.Price = -1 }, errs.ErrInvalidAmount},
			{"priced without currency", func(r *usecase.CreateGameRequest) { r.Currency = " " }, errs.ErrInvalidRequest},
			{"blank title", func(r *usecase.CreateGameRequest) { r.Title = "" }, errs.ErrInvalidRequest},
			{"missing datetime", func(r *usecase.CreateGameRequest) { r.Datetime = time.Time{} }, errs.ErrInvalidRequest},
		}
		for _, tt := range invalid {
			t.Run(tt.name, func(t *testing.T) {
				service, _, _ := setup(t)
				req := validRequest
				tt.mutate(&req)

				_, err := service.CreateGame(ctx, req)

				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("repository failure is logged", func(t *testing.T) {
		service, games, logger := setup(t)
		games.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		logger.EXPECT().Error("Failed to create game", mock.Anything).Once()

		_, err := service.CreateGame(ctx, validRequest)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestService_GetGame(t *testing.T) {
	ctx := context.Background()
	uow := persistencemocks.NewMockUnitOfWork(t)
	games := persistencemocks.NewMockGameRepository(t)
	uow.EXPECT().GetGameRepository(ctx).Return(games).Maybe()
	service := NewService(uow, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

	games.EXPECT().GetByID(ctx, uint64(9)).Return(nil, errs.ErrGameNotFound).Once()

	_, err := service.GetGame(ctx, 9)
	assert.ErrorIs(t, err, errs.ErrGameNotFound)

	_, err = service.GetGame(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidGameID)
}
