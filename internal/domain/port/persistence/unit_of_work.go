package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating booking operations
// across multiple repositories so that a confirmation, its payment record and
// its ledger movement commit or roll back together
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	//
	// Possible errors:
	// - ErrConcurrentUpdate: If the database aborted the transaction because of a conflict
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetGameRepository returns a game repository bound to the current transaction
	GetGameRepository(ctx context.Context) GameRepository

	// GetRegistrationRepository returns a registration repository bound to the current transaction
	GetRegistrationRepository(ctx context.Context) RegistrationRepository

	// GetPaymentTransactionRepository returns a payment transaction repository bound to the current transaction
	GetPaymentTransactionRepository(ctx context.Context) PaymentTransactionRepository

	// GetCreditsRepository returns a credits repository bound to the current transaction
	GetCreditsRepository(ctx context.Context) CreditsRepository
}
