package lifecycle

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/messaging"
)

// Notifier runs the side effects that follow a committed registration change:
// the game's cached occupancy is dropped and a lifecycle event is published.
// Failures are logged only; the committed change stands.
type Notifier struct {
	publisher    messaging.EventPublisher
	cache        cache.OccupancyCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewNotifier creates a new Notifier
func NewNotifier(
	publisher messaging.EventPublisher,
	occupancyCache cache.OccupancyCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Notifier {
	return &Notifier{
		publisher:    publisher,
		cache:        occupancyCache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RegistrationChanged announces that reg moved through eventType
func (n *Notifier) RegistrationChanged(ctx context.Context, eventType entity.RegistrationEventType, reg *entity.Registration) {
	if reg == nil {
		return
	}

	if err := n.cache.Invalidate(ctx, reg.GameID); err != nil {
		n.logger.Warn("Failed to invalidate occupancy cache", map[string]any{
			"gameId": reg.GameID,
			"error":  err.Error(),
		})
	}

	event := entity.NewRegistrationEvent(eventType, reg, n.timeProvider.Now())
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.Warn("Failed to publish registration event", map[string]any{
			"eventType":      string(eventType),
			"registrationId": reg.ID,
			"gameId":         reg.GameID,
			"error":          err.Error(),
		})
	}
}
