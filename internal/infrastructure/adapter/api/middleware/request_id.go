package middleware

import (
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the correlation id in requests and responses
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key of the correlation id
const RequestIDKey = "request_id"

// RequestID reuses the caller's X-Request-ID or issues a new one, and makes it
// available to the gin context and to the request context used by the SQL logger
func RequestID(idGenerator coreport.IDGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = idGenerator.NewID()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(applogger.WithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}
