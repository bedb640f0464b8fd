package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/cache"
	"github.com/gin-gonic/gin"
)

// Limiter takes one token from the bucket identified by key
type Limiter interface {
	Allow(ctx context.Context, key string) (cache.RateDecision, error)
}

// RateLimit throttles callers by player id, or by client ip before
// authentication. A limiter failure lets the request through.
func RateLimit(limiter Limiter, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if playerID, ok := PlayerIDFromContext(c); ok {
			key = "player:" + strconv.FormatUint(playerID, 10)
		}

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("Rate limiter unavailable, allowing request", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:      http.StatusTooManyRequests,
				ErrorCode: "RATE_LIMITED",
				Message:   "Rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
