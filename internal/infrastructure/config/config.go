package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Booking     BookingConfig  `mapstructure:"booking"`
	Redis       RedisConfig    `mapstructure:"redis"`
	RabbitMQ    RabbitMQConfig `mapstructure:"rabbitmq"`
	Auth        AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	SQLitePath      string        `mapstructure:"sqlitePath"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`      // seconds
	MonitorInterval time.Duration `mapstructure:"monitorInterval"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	Service string `mapstructure:"service"`
}

// BookingConfig contains reservation and registration settings
type BookingConfig struct {
	ReservationTTL  time.Duration `mapstructure:"reservationTTL"` // seconds
	MaxTxRetries    int           `mapstructure:"maxTxRetries"`
	DefaultCurrency string        `mapstructure:"defaultCurrency"`
	SweeperEnabled  bool          `mapstructure:"sweeperEnabled"`
	SweepInterval   time.Duration `mapstructure:"sweepInterval"` // seconds
	SweepGrace      time.Duration `mapstructure:"sweepGrace"`    // seconds
	SweepBatchSize  int           `mapstructure:"sweepBatchSize"`
	SeedDemoData    bool          `mapstructure:"seedDemoData"`
}

// RedisConfig contains the occupancy cache and rate limiter settings
type RedisConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Addr           string        `mapstructure:"addr"`
	Password       string        `mapstructure:"password"`
	DB             int           `mapstructure:"db"`
	OccupancyTTL   time.Duration `mapstructure:"occupancyTTL"` // seconds
	RateLimitRPS   int           `mapstructure:"rateLimitRPS"`
	RateLimitBurst int           `mapstructure:"rateLimitBurst"`
}

// RabbitMQConfig contains lifecycle event and gateway signal settings
type RabbitMQConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	URL            string `mapstructure:"url"`
	EventsExchange string `mapstructure:"eventsExchange"`
	PaymentQueue   string `mapstructure:"paymentQueue"`
	ConsumerTag    string `mapstructure:"consumerTag"`
	Prefetch       int    `mapstructure:"prefetch"`
}

// AuthConfig contains JWT verification settings
type AuthConfig struct {
	JWTSecret   string `mapstructure:"jwtSecret"`
	Issuer      string `mapstructure:"issuer"`
	AdminRole   string `mapstructure:"adminRole"`
	GatewayRole string `mapstructure:"gatewayRole"`
}

// IsProduction reports whether the process runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
