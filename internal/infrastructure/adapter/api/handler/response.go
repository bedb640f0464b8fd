package handler

import (
	"fmt"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// HTTPStatus maps a domain error to the HTTP status of its response
func HTTPStatus(err error) int {
	switch domainerr.CodeOf(err) {
	case domainerr.GameFull,
		domainerr.ReservationExpired,
		domainerr.ReservationMismatch,
		domainerr.TransactionConflict,
		domainerr.AlreadyRegistered,
		domainerr.GameStarted,
		domainerr.CreditsCurrencyMismatch,
		domainerr.ConcurrentUpdate:
		return http.StatusConflict
	case domainerr.MissingPayment:
		return http.StatusUnprocessableEntity
	case domainerr.InsufficientCredits:
		return http.StatusPaymentRequired
	case domainerr.GameNotFound, domainerr.NotRegistered:
		return http.StatusNotFound
	case domainerr.InvalidRequest, domainerr.InvalidAmount:
		return http.StatusBadRequest
	case domainerr.Unauthorized:
		return http.StatusUnauthorized
	case domainerr.Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes its standardized response. Expected
// business rejections are logged at info level.
func respondError(c *gin.Context, logger coreport.Logger, message string, err error, fields map[string]any) {
	status := HTTPStatus(err)
	if fields == nil {
		fields = map[string]any{}
	}
	fields["error"] = err.Error()
	fields["errorCode"] = string(domainerr.CodeOf(err))
	fields["requestId"] = c.GetString(middleware.RequestIDKey)

	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
	} else {
		logger.Info(message, fields)
	}

	c.JSON(status, dto.NewErrorResponse(err))
}

// badRequest writes an INVALID_REQUEST response with a custom message
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithMessage(domainerr.ErrInvalidRequest, message))
}

// parseIDParam reads a positive numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, fmt.Sprintf("Invalid %s format", name))
		return 0, false
	}
	return id, true
}

// currentPlayer returns the authenticated player id or writes a 401
func currentPlayer(c *gin.Context) (uint64, bool) {
	playerID, ok := middleware.PlayerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(domainerr.ErrUnauthorized))
		return 0, false
	}
	return playerID, true
}

// parsePaging reads limit and offset query parameters
func parsePaging(c *gin.Context, defaultLimit, maxLimit int) (int, int, bool) {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			badRequest(c, "limit must be a positive integer")
			return 0, 0, false
		}
		limit = min(v, maxLimit)
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			badRequest(c, "offset must be a non-negative integer")
			return 0, 0, false
		}
		offset = v
	}
	return limit, offset, true
}
