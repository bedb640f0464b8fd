package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int           `json:"openConnections"`
	IdleConnections    int           `json:"idleConnections"`
	MaxOpenConnections int           `json:"maxOpenConnections"`
	InUse              int           `json:"inUse"`
	WaitCount          int64         `json:"waitCount"`
	WaitDuration       time.Duration `json:"waitDurationNs"`
	Healthy            bool          `json:"healthy"`
	LastCheckedAt      time.Time     `json:"lastCheckedAt"`
}

// ConnectionPoolMonitor samples pool statistics and pings the database on an interval
type ConnectionPoolMonitor struct {
	manager      *Manager
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	metrics      *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(manager *Manager, logger coreport.Logger, timeProvider coreport.TimeProvider) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		manager:      manager,
		logger:       logger,
		timeProvider: timeProvider,
		stopChan:     make(chan struct{}),
	}
}

// Start takes a first sample and then keeps sampling every interval
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns the last sampled metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metrics == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.metrics
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	sqlDB, err := m.manager.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pingErr := sqlDB.PingContext(ctx)
	if pingErr != nil {
		m.logger.Error("Database ping failed", map[string]any{
			"error": pingErr.Error(),
		})
	}

	stats := sqlDB.Stats()

	m.mutex.Lock()
	m.metrics = &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		Healthy:            pingErr == nil,
		LastCheckedAt:      m.timeProvider.Now(),
	}
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return nil
}
