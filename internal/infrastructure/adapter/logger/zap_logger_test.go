package logger

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestZapLogger_SetLevel(t *testing.T) {
	log := NewZapLoggerWithConfig(Config{Level: "warn", Format: "json", Service: "test"})
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())

	zl := log.(*ZapLogger)
	assert.True(t, zl.logger.Core().Enabled(-1), "debug should be enabled after SetLevel")

	assert.NotPanics(t, func() {
		log.Debug("debug entry", map[string]any{"game_id": 1})
		log.Info("info entry", nil)
	})
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))

	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	assert.Equal(t, context.Background(), WithRequestID(context.Background(), ""))
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.NoError(t, log.Flush())
}
