package database

import (
	"fmt"

	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/config"
)

// CreateConfigFromAppConfig adapts the global configuration to database configuration
func CreateConfigFromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()

	if conf.Database.Driver != "" {
		dbConf.Driver = conf.Database.Driver
	}
	dbConf.Host = conf.Database.Host
	if port := ParsePort(conf.Database.Port); port > 0 {
		dbConf.Port = port
	}
	dbConf.Username = conf.Database.Username
	dbConf.Password = conf.Database.Password
	dbConf.Database = conf.Database.Database

	// For non-sensitive values, we can override from the config
	if conf.Database.SSLMode != "" {
		dbConf.SSLMode = conf.Database.SSLMode
	}
	if conf.Database.SQLitePath != "" {
		dbConf.SQLitePath = conf.Database.SQLitePath
	}
	if conf.Database.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = conf.Database.MaxOpenConns
	}
	if conf.Database.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = conf.Database.MaxIdleConns
	}
	if conf.Database.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = conf.Database.ConnMaxLifetime
	}
	if conf.Database.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = conf.Database.ConnMaxIdleTime
	}
	if conf.Database.QueryTimeout > 0 {
		dbConf.QueryTimeout = conf.Database.QueryTimeout
	}
	if conf.Database.SlowThreshold > 0 {
		dbConf.SlowThreshold = conf.Database.SlowThreshold
	}
	if conf.Database.RetryAttempts > 0 {
		dbConf.RetryAttempts = conf.Database.RetryAttempts
	}
	if conf.Database.RetryDelay > 0 {
		dbConf.RetryDelay = conf.Database.RetryDelay
	}
	if conf.Database.MonitorInterval > 0 {
		dbConf.MonitorInterval = conf.Database.MonitorInterval
	}
	if conf.Logger.Level != "" {
		dbConf.LogLevel = conf.Logger.Level
	}

	// SQLite serializes writers on the file lock, extra connections only queue
	if dbConf.IsSQLite() {
		dbConf.MaxOpenConns = 1
		dbConf.MaxIdleConns = 1
	}

	return dbConf
}

// ParsePort converts a port string to an int
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0 // Return 0 to signal not set instead of defaulting
	}
	return p
}
