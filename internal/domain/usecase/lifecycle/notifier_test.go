package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	cachemocks "github.com/amirhossein-jamali/game-booking/mocks/port/cache"
	coremocks "github.com/amirhossein-jamali/game-booking/mocks/port/core"
	messagingmocks "github.com/amirhossein-jamali/game-booking/mocks/port/messaging"
)

func TestNotifier_RegistrationChanged(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reg := entity.NewPendingRegistration("reg-1", 42, 7, now, 5*time.Minute)

	setup := func(t *testing.T) (*Notifier, *messagingmocks.MockEventPublisher, *cachemocks.MockOccupancyCache, *coremocks.MockLogger) {
		publisher := messagingmocks.NewMockEventPublisher(t)
		occupancyCache := cachemocks.NewMockOccupancyCache(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		timeProvider.EXPECT().Now().Return(now).Maybe()
		return NewNotifier(publisher, occupancyCache, timeProvider, logger), publisher, occupancyCache, logger
	}

	t.Run("invalidates the game and publishes a snapshot", func(t *testing.T) {
		notifier, publisher, occupancyCache, _ := setup(t)
		occupancyCache.EXPECT().Invalidate(ctx, uint64(42)).Return(nil).Once()
		publisher.EXPECT().Publish(ctx, entity.RegistrationEvent{
			Type:           entity.EventRegistrationReserved,
			RegistrationID: "reg-1",
			GameID:         42,
			PlayerID:       7,
			Status:         entity.RegistrationPending,
			PaymentStatus:  entity.PaymentPending,
			OccurredAt:     now,
		}).Return(nil).Once()

		notifier.RegistrationChanged(ctx, entity.EventRegistrationReserved, reg)
	})

	t.Run("side effect failures are only logged", func(t *testing.T) {
		notifier, publisher, occupancyCache, logger := setup(t)
		occupancyCache.EXPECT().Invalidate(ctx, uint64(42)).Return(errors.New("redis down")).Once()
		publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("channel closed")).Once()
		logger.EXPECT().Warn("Failed to invalidate occupancy cache", mock.Anything).Once()
		logger.EXPECT().Warn("Failed to publish registration event", mock.Anything).Once()

		notifier.RegistrationChanged(ctx, entity.EventRegistrationReserved, reg)
	})

	t.Run("nil registration is ignored", func(t *testing.T) {
		notifier, _, _, _ := setup(t)

		notifier.RegistrationChanged(ctx, entity.EventRegistrationCancelled, nil)
	})
}
