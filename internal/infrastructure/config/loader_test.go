package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile_AppliesDefaultsAndDurations(t *testing.T) {
	t.Setenv("GB_ENV", "test")
	path := writeConfigFile(t, `
database:
  driver: "sqlite"
  sqlitePath: "booking.db"
booking:
  reservationTTL: 120
`)

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
	assert.Equal(t, 2*time.Minute, cfg.Booking.ReservationTTL)
	assert.Equal(t, time.Minute, cfg.Booking.SweepInterval)
	assert.Equal(t, "KZT", cfg.Booking.DefaultCurrency)
	assert.Equal(t, "booking.events", cfg.RabbitMQ.EventsExchange)
	assert.Equal(t, "payment.gateway.events", cfg.RabbitMQ.PaymentQueue)
	assert.Equal(t, 5*time.Second, cfg.Redis.OccupancyTTL)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
}

func TestLoadConfigFromFile_EnvOverrides(t *testing.T) {
	t.Setenv("GB_ENV", "development")
	t.Setenv("GB_DB_PASSWORD", "from-env")
	t.Setenv("GB_JWT_SECRET", "env-secret")
	t.Setenv("GB_SERVER_PORT", "9090")
	t.Setenv("GB_RESERVATION_TTL_SECONDS", "60")
	path := writeConfigFile(t, `
database:
  password: "from-file"
auth:
  jwtSecret: "file-secret"
`)

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Booking.ReservationTTL)
}

func TestLoadConfigFromFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		content string
		errMsg  string
	}{
		{
			name:    "Negative reservation TTL",
			env:     "test",
			content: "booking:\n  reservationTTL: -1\n",
			errMsg:  "reservationTTL",
		},
		{
			name:    "Redis enabled without address",
			env:     "test",
			content: "redis:\n  enabled: true\n  addr: \"\"\n",
			errMsg:  "redis.addr",
		},
		{
			name:    "RabbitMQ enabled without url",
			env:     "test",
			content: "rabbitmq:\n  enabled: true\n",
			errMsg:  "rabbitmq.url",
		},
		{
			name:    "Production without JWT secret",
			env:     "production",
			content: "server:\n  port: 8080\n",
			errMsg:  "jwtSecret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GB_ENV", tt.env)
			path := writeConfigFile(t, tt.content)

			cfg, err := LoadConfigFromFile(path)

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("GB_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("GB_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("GB_TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("GB_TEST_INT", 7))

	t.Setenv("GB_TEST_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("GB_TEST_INT", 7))

	assert.Equal(t, 7, getEnvInt("GB_TEST_INT_MISSING", 7))
}
