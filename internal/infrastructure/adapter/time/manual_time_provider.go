package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
)

// ManualTimeProvider is a clock that only moves when told to. Integration
// tests use it to let holds lapse without sleeping.
type ManualTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualTimeProvider creates a clock frozen at start
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start.UTC()}
}

// Now returns the frozen instant
func (p *ManualTimeProvider) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.now
}

// Set moves the clock to t
func (p *ManualTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	p.now = t.UTC()
	p.mu.Unlock()
}

// Advance moves the clock forward by d
func (p *ManualTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	p.mu.Unlock()
}

// Since returns the manual time elapsed since t
func (p *ManualTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.Now().Sub(t))
}

// Until returns the manual duration until t
func (p *ManualTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(t.Sub(p.Now()))
}

// WithTimeout uses a real deadline, the manual clock does not drive contexts
func (p *ManualTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
