package persistence

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// PaymentTransactionRepository defines the methods to record external charges
type PaymentTransactionRepository interface {
	// Create inserts the transaction unless (provider, external transaction id)
	// already exists. inserted is false when an existing row was left in place.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.PaymentTransaction) (inserted bool, err error)

	// GetByExternalID retrieves a transaction by provider and external id
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no such transaction exists
	// - ErrDatabaseConnection: If database connection fails
	GetByExternalID(ctx context.Context, provider, externalID string) (*entity.PaymentTransaction, error)

	// ListByRegistration returns every transaction bound to a registration, oldest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByRegistration(ctx context.Context, registrationID string) ([]*entity.PaymentTransaction, error)
}
