package core

import (
	"context"
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
	Minute               = Duration(time.Minute)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts the clock so that hold expiry can be evaluated at a
// single, controllable read time.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	Until(t time.Time) Duration
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
}
