package messaging

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// EventPublisher announces registration lifecycle transitions to other services.
// Publishing happens after commit; a failure never undoes the transition.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.RegistrationEvent) error
	Close() error
}
