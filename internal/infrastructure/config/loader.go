package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from the file matching GB_ENV
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, env)
}

// LoadConfigFromFile loads configuration from an explicit file path
func LoadConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, getEnvironment())
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix("GB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "game_booking.db")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.slowThreshold", 200)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.monitorInterval", 30)
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.service", "game-booking")

	v.SetDefault("booking.reservationTTL", 300)
	v.SetDefault("booking.maxTxRetries", 3)
	v.SetDefault("booking.defaultCurrency", "KZT")
	v.SetDefault("booking.sweeperEnabled", true)
	v.SetDefault("booking.sweepInterval", 60)
	v.SetDefault("booking.sweepGrace", 600)
	v.SetDefault("booking.sweepBatchSize", 500)
	v.SetDefault("booking.seedDemoData", false)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.occupancyTTL", 5)
	v.SetDefault("redis.rateLimitRPS", 20)
	v.SetDefault("redis.rateLimitBurst", 40)

	v.SetDefault("rabbitmq.enabled", false)
	v.SetDefault("rabbitmq.eventsExchange", "booking.events")
	v.SetDefault("rabbitmq.paymentQueue", "payment.gateway.events")
	v.SetDefault("rabbitmq.consumerTag", "game-booking")
	v.SetDefault("rabbitmq.prefetch", 16)

	v.SetDefault("auth.issuer", "game-booking")
	v.SetDefault("auth.adminRole", "admin")
	v.SetDefault("auth.gatewayRole", "gateway")
}

// getEnvironment determines the environment to use based on GB_ENV
func getEnvironment() string {
	env := os.Getenv("GB_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes secrets and connection endpoints overridable from
// the environment with short variable names
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"GB_DB_DRIVER":        "database.driver",
		"GB_DB_HOST":          "database.host",
		"GB_DB_PORT":          "database.port",
		"GB_DB_USERNAME":      "database.username",
		"GB_DB_PASSWORD":      "database.password",
		"GB_DB_NAME":          "database.database",
		"GB_DB_SSL_MODE":      "database.sslMode",
		"GB_DB_SQLITE_PATH":   "database.sqlitePath",
		"GB_SERVER_HOST":      "server.host",
		"GB_SERVER_PORT":      "server.port",
		"GB_LOGGER_LEVEL":     "logger.level",
		"GB_JWT_SECRET":       "auth.jwtSecret",
		"GB_REDIS_ADDR":       "redis.addr",
		"GB_REDIS_PASSWORD":   "redis.password",
		"GB_RABBITMQ_URL":     "rabbitmq.url",
		"GB_DEFAULT_CURRENCY": "booking.defaultCurrency",
	}
	for envKey, configKey := range overrides {
		if value := os.Getenv(envKey); value != "" {
			v.Set(configKey, value)
		}
	}

	if maxOpenConns := getEnvInt("GB_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxRetries := getEnvInt("GB_BOOKING_MAX_TX_RETRIES", -1); maxRetries >= 0 {
		v.Set("booking.maxTxRetries", maxRetries)
	}
	if ttl := getEnvInt("GB_RESERVATION_TTL_SECONDS", 0); ttl > 0 {
		v.Set("booking.reservationTTL", ttl)
	}
}

// getEnvInt gets an environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the plain numbers of the YAML files to durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.SlowThreshold = config.Database.SlowThreshold * time.Millisecond
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
	config.Database.MonitorInterval = config.Database.MonitorInterval * time.Second

	config.Booking.ReservationTTL = config.Booking.ReservationTTL * time.Second
	config.Booking.SweepInterval = config.Booking.SweepInterval * time.Second
	config.Booking.SweepGrace = config.Booking.SweepGrace * time.Second

	config.Redis.OccupancyTTL = config.Redis.OccupancyTTL * time.Second
}

// validateConfig rejects settings the booking engine cannot run with
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Booking.ReservationTTL <= 0 {
		return errors.New("booking.reservationTTL must be positive")
	}
	if config.Booking.MaxTxRetries < 0 {
		return errors.New("booking.maxTxRetries must not be negative")
	}
	if strings.TrimSpace(config.Booking.DefaultCurrency) == "" {
		return errors.New("booking.defaultCurrency is required")
	}
	if config.Booking.SweeperEnabled && config.Booking.SweepInterval <= 0 {
		return errors.New("booking.sweepInterval must be positive when the sweeper is enabled")
	}
	if config.Redis.Enabled && config.Redis.Addr == "" {
		return errors.New("redis.addr is required when redis is enabled")
	}
	if config.RabbitMQ.Enabled && config.RabbitMQ.URL == "" {
		return errors.New("rabbitmq.url is required when rabbitmq is enabled")
	}
	if config.Environment == Production && config.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret is required in production")
	}
	return nil
}
