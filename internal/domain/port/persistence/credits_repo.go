package persistence

import (
	"context"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
)

// CreditsRepository defines the methods behind the credits ledger
type CreditsRepository interface {
	// Get retrieves the balance row of a user
	//
	// Possible errors:
	// - ErrCreditsNotFound: If the user has no ledger row yet
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context, userID uint64) (*entity.UserCredits, error)

	// Decrement subtracts amount only if the row exists in the given currency
	// and holds at least amount. Reports whether the row was changed.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Decrement(ctx context.Context, userID uint64, currency string, amount int64) (bool, error)

	// IncrementOrCreate adds amount to the balance, creating the row in the given
	// currency when missing. Reports false when the row exists in another currency.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	IncrementOrCreate(ctx context.Context, userID uint64, currency string, amount int64) (bool, error)

	// AppendTransaction writes a ledger entry
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	AppendTransaction(ctx context.Context, transaction *entity.CreditTransaction) error

	// ListTransactions returns ledger entries of a user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListTransactions(ctx context.Context, userID uint64, limit, offset int) ([]*entity.CreditTransaction, error)

	// SumTransactions returns the sum of all signed ledger amounts of a user
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	SumTransactions(ctx context.Context, userID uint64) (int64, error)
}
