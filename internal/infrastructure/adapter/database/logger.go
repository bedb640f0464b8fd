package database

import (
	"context"
	"errors"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseLogger is a GORM logger that writes through the core logger
type DatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// parseGormLogLevel maps the configured level name to a GORM level
func parseGormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	default:
		return logger.Info
	}
}

// NewDatabaseLogger creates a new database logger
func NewDatabaseLogger(coreLogger coreport.Logger, timeProvider coreport.TimeProvider, level string, slowThreshold time.Duration) logger.Interface {
	return &DatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      parseGormLogLevel(level),
		slowThreshold: slowThreshold,
		timeProvider:  timeProvider,
	}
}

// LogMode sets the log level for the logger
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *DatabaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, l.baseFields(ctx))
	}
}

// Warn logs warn messages
func (l *DatabaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, l.baseFields(ctx))
	}
}

// Error logs error messages
func (l *DatabaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, l.baseFields(ctx))
	}
}

func (l *DatabaseLogger) baseFields(ctx context.Context) map[string]any {
	fields := map[string]any{"source": "database"}
	if requestID := applogger.RequestIDFromContext(ctx); requestID != "" {
		fields["request_id"] = requestID
	}
	return fields
}

// Trace logs SQL operations
func (l *DatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := l.timeProvider.Since(begin).Std()
	sql, rows := fc()

	fields := l.baseFields(ctx)
	fields["elapsed"] = elapsed.String()
	fields["rows"] = rows
	fields["sql"] = sql

	if queryType := extractQueryType(sql); queryType != "" {
		fields["type"] = queryType
	}
	if tableName := extractTableName(sql); tableName != "" {
		fields["table"] = tableName
	}

	// A missing row is an expected outcome for lookups
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		fields["error"] = err.Error()
	} else {
		err = nil
	}

	switch {
	case err != nil && l.logLevel >= logger.Error:
		l.coreLogger.Error("SQL Error", fields)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}

// extractQueryType determines the type of SQL query
func extractQueryType(sql string) string {
	sqlUpper := strings.ToUpper(strings.TrimSpace(sql))
	for _, kind := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sqlUpper, kind) {
			return kind
		}
	}
	return ""
}

// extractTableName takes the identifier after FROM, INTO or UPDATE
func extractTableName(sql string) string {
	sql = strings.TrimSpace(sql)
	sqlUpper := strings.ToUpper(sql)

	var start int
	switch {
	case strings.Contains(sqlUpper, " FROM "):
		start = strings.Index(sqlUpper, " FROM ") + len(" FROM ")
	case strings.Contains(sqlUpper, " INTO "):
		start = strings.Index(sqlUpper, " INTO ") + len(" INTO ")
	case strings.HasPrefix(sqlUpper, "UPDATE "):
		start = len("UPDATE ")
	default:
		return ""
	}

	remainder := strings.TrimSpace(sql[start:])
	if end := strings.IndexAny(remainder, " \n\t("); end != -1 {
		remainder = remainder[:end]
	}
	return strings.Trim(remainder, "\"`")
}
