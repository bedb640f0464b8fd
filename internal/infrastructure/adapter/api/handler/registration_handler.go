package handler

import (
	"errors"
	"io"
	"net/http"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles confirmation, cancellation and lookup of the
// authenticated player's registration
type RegistrationHandler struct {
	registrationUseCase usecase.RegistrationUseCase
	logger              coreport.Logger
}

// NewRegistrationHandler creates a new registration handler instance
func NewRegistrationHandler(registrationUseCase usecase.RegistrationUseCase, logger coreport.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUseCase: registrationUseCase,
		logger:              logger,
	}
}

// Confirm handles the POST /games/:gameId/registrations/confirm endpoint
func (h *RegistrationHandler) Confirm(c *gin.Context) {
	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}
	playerID, ok := currentPlayer(c)
	if !ok {
		return
	}

	// Free games are confirmed without a body
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.registrationUseCase.ConfirmRegistration(c.Request.Context(), usecase.ConfirmRequest{
		GameID:   gameID,
		PlayerID: playerID,
		Evidence: req.Evidence(),
	})
	if err != nil {
		respondError(c, h.logger, "Confirmation rejected", err, map[string]any{
			"gameId":   gameID,
			"playerId": playerID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewConfirmResponse(result))
}

// Cancel handles the POST /games/:gameId/registrations/cancel endpoint
func (h *RegistrationHandler) Cancel(c *gin.Context) {
	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}
	playerID, ok := currentPlayer(c)
	if !ok {
		return
	}

	result, err := h.registrationUseCase.CancelRegistration(c.Request.Context(), gameID, playerID)
	if err != nil {
		respondError(c, h.logger, "Cancellation rejected", err, map[string]any{
			"gameId":   gameID,
			"playerId": playerID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewCancelResponse(result))
}

// GetMine handles the GET /games/:gameId/registrations/me endpoint
func (h *RegistrationHandler) GetMine(c *gin.Context) {
	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}
	playerID, ok := currentPlayer(c)
	if !ok {
		return
	}

	reg, err := h.registrationUseCase.GetRegistration(c.Request.Context(), gameID, playerID)
	if err != nil {
		respondError(c, h.logger, "Error getting registration", err, map[string]any{
			"gameId":   gameID,
			"playerId": playerID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewRegistrationResponse(reg))
}
