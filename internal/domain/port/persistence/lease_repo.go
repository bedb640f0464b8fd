package persistence

import (
	"context"
	"time"
)

// LeaseRepository hands out named, expiring leases so that only one instance
// runs a background job at a time
type LeaseRepository interface {
	// Acquire takes the lease for holder if it is free, expired or already held
	// by holder. Reports whether the lease is now held by holder.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Acquire(ctx context.Context, name, holder string, ttl time.Duration) (bool, error)

	// Release gives the lease up if holder still owns it
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Release(ctx context.Context, name, holder string) error
}
