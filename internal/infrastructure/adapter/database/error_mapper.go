package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/game-booking/internal/domain/error"
)

// ErrorMapper maps transaction-level database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error raised while running operation
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// PostgreSQL aborts SERIALIZABLE transactions with 40001 and deadlocks
	// with 40P01, SQLite reports a busy database
	case strings.Contains(errMsg, "could not serialize") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "40001") ||
		strings.Contains(errMsg, "40p01") ||
		strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "sqlite_busy"):
		return fmt.Errorf("%w: %s failed: %s", domainErr.ErrConcurrentUpdate, operation, err.Error())

	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return fmt.Errorf("%w: %s", domainErr.ErrDuplicateKey, err.Error())

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "bad connection"):
		return fmt.Errorf("%w: %s", domainErr.ErrDatabaseConnection, err.Error())

	case strings.Contains(errMsg, "timeout"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s failed: %s", domainErr.ErrDatabaseConnection, operation, err.Error())
	}
}
