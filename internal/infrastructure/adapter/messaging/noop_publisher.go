package messaging

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/messaging"
)

// LogPublisher writes lifecycle events to the log instead of a broker.
// It is used when RabbitMQ is disabled.
type LogPublisher struct {
	logger coreport.Logger
}

var _ messaging.EventPublisher = (*LogPublisher)(nil)

// NewLogPublisher creates a new LogPublisher
func NewLogPublisher(logger coreport.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event at debug level
func (p *LogPublisher) Publish(_ context.Context, event entity.RegistrationEvent) error {
	p.logger.Debug("Registration event", map[string]any{
		"type":            string(event.Type),
		"registration_id": event.RegistrationID,
		"game_id":         event.GameID,
		"player_id":       event.PlayerID,
		"status":          string(event.Status),
	})
	return nil
}

func (p *LogPublisher) Close() error { return nil }
