package database

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError retries operation while it fails with a connectivity
// error. Serialization conflicts are not retried here, the unit of work runner
// replays the whole operation for those.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	logger coreport.Logger,
) error {
	var err error
	attempt := 0

	for ; attempt < config.MaxRetries; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}
		if !isTransientError(err) || attempt == config.MaxRetries-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts":    attempt + 1,
				"max_retries": config.MaxRetries,
				"error":       ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	if isTransientError(err) {
		logger.Error("All retry attempts failed", map[string]any{
			"attempts":    attempt + 1,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
		})
	}
	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}
	return backoff
}

// isTransientError checks if an error is a connectivity problem worth retrying
func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "i/o timeout") ||
		strings.Contains(errMsg, "the database system is starting up") ||
		strings.Contains(errMsg, "eof")
}
