package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError  ErrorType = "duplicate_key"
	SerializationError ErrorType = "serialization"
	TransientError     ErrorType = "transient"
	ConnectionError    ErrorType = "connection"
	ConstraintError    ErrorType = "constraint"
	NotFoundError      ErrorType = "not_found"
)

// ErrorClassifier provides methods to classify database errors from both
// PostgreSQL and SQLite drivers
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsSerializationError(err):
		return SerializationError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	default:
		return ""
	}
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// IsSerializationError checks if the database aborted the transaction because a
// concurrent one touched the same rows. The whole unit of work may be retried.
func (c *ErrorClassifier) IsSerializationError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "serialization failure") ||
		strings.Contains(msg, "SQLSTATE 40001") ||
		strings.Contains(msg, "SQLSTATE 40P01") ||
		strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "broken pipe")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "network") ||
		c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "violates") ||
		strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "not null") ||
		c.IsDuplicateKeyError(err)
}

// ToDomainError maps driver failures that are not specific to one repository
func (c *ErrorClassifier) ToDomainError(err error) error {
	if isContextError(err) {
		return err
	}
	if c.IsSerializationError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConcurrentUpdate, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
