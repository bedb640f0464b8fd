package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReservationHandler handles seat hold requests of the authenticated player
type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
	logger             coreport.Logger
}

// NewReservationHandler creates a new reservation handler instance
func NewReservationHandler(reservationUseCase usecase.ReservationUseCase, logger coreport.Logger) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
		logger:             logger,
	}
}

// Reserve handles the POST /games/:gameId/reservations endpoint
func (h *ReservationHandler) Reserve(c *gin.Context) {
	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}
	playerID, ok := currentPlayer(c)
	if !ok {
		return
	}

	result, err := h.reservationUseCase.ReserveSeat(c.Request.Context(), gameID, playerID)
	if err != nil {
		respondError(c, h.logger, "Reservation rejected", err, map[string]any{
			"gameId":   gameID,
			"playerId": playerID,
		})
		return
	}

	status := http.StatusCreated
	if result.Reused {
		status = http.StatusOK
	}
	c.JSON(status, dto.NewReservationResponse(result))
}

// Release handles the DELETE /games/:gameId/reservations endpoint. The
// optional reservationId query parameter narrows the release to one hold.
func (h *ReservationHandler) Release(c *gin.Context) {
	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}
	playerID, ok := currentPlayer(c)
	if !ok {
		return
	}
	reservationID := c.Query("reservationId")

	result, err := h.reservationUseCase.ReleaseReservation(c.Request.Context(), gameID, playerID, reservationID)
	if err != nil {
		respondError(c, h.logger, "Error releasing reservation", err, map[string]any{
			"gameId":        gameID,
			"playerId":      playerID,
			"reservationId": reservationID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ReleaseResponse{Released: result.Released})
}
