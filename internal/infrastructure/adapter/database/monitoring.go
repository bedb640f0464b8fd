package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
)

// slowOperationThreshold marks unit of work steps that are worth a warning
const slowOperationThreshold = 100 * time.Millisecond

// QueryMetrics holds metrics about a database operation
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	ErrorMessage string
}

// MetricsCollector measures database operations that are not visible to the
// GORM trace logger, such as commits
type MetricsCollector struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MeasureQuery measures the execution time of fn and warns when it is slow
func (c *MetricsCollector) MeasureQuery(_ context.Context, operation string, fn func() (int64, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()
	rowsAffected, err := fn()

	metrics := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Since(start).Std(),
		RowsAffected: rowsAffected,
		Failed:       err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if metrics.Duration > slowOperationThreshold {
		c.logger.Warn("Slow database operation detected", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"rows_affected": rowsAffected,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return metrics, err
}
