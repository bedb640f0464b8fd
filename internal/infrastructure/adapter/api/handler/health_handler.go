package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// DatabaseHealth is implemented by the database manager
type DatabaseHealth interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthResponse represents the health endpoint body
type HealthResponse struct {
	Status   string                         `json:"status"`
	Time     time.Time                      `json:"time"`
	Database string                         `json:"database"`
	Pool     database.ConnectionPoolMetrics `json:"pool"`
}

// HealthHandler reports whether the service can reach its database
type HealthHandler struct {
	db           DatabaseHealth
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseHealth, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:   "ok",
		Time:     h.timeProvider.Now(),
		Database: "up",
		Pool:     h.db.PoolMetrics(),
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		resp.Status = "degraded"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
