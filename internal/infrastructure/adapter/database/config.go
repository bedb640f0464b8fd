package database

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	SlowThreshold   time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
	MonitorInterval time.Duration
}

// DefaultConfig returns a Config with default values. Connection details and
// credentials are never defaulted, they come from the application config.
func DefaultConfig() *Config {
	return &Config{
		Driver:          DriverPostgres,
		Port:            5432,
		SSLMode:         "disable",
		SQLitePath:      "game_booking.db",
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    10 * time.Second,
		SlowThreshold:   200 * time.Millisecond,
		LogLevel:        "info",
		RetryAttempts:   3,
		RetryDelay:      2 * time.Second,
		MonitorInterval: 30 * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Host == "" {
			return errors.New("database host is required")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid port number: %d", c.Port)
		}
		if c.Username == "" {
			return errors.New("database username is required")
		}
		if c.Database == "" {
			return errors.New("database name is required")
		}
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		// Write transactions start with BEGIN IMMEDIATE so that concurrent
		// units of work queue on the database lock instead of failing at commit
		params := url.Values{}
		params.Set("_busy_timeout", "5000")
		params.Set("_foreign_keys", "on")
		params.Set("_journal_mode", "WAL")
		params.Set("_txlock", "immediate")
		return fmt.Sprintf("file:%s?%s", c.SQLitePath, params.Encode())
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// IsSQLite reports whether the configuration targets SQLite
func (c *Config) IsSQLite() bool {
	return c.Driver == DriverSQLite
}

// WithMaxOpenConnections returns a copy of the config with updated max open connections
func (c *Config) WithMaxOpenConnections(max int) *Config {
	newConfig := *c
	newConfig.MaxOpenConns = max
	return &newConfig
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}
