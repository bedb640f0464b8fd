package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// CreditsHandler handles credits balance, history and top-up requests
type CreditsHandler struct {
	creditsUseCase usecase.CreditsUseCase
	logger         coreport.Logger
}

// NewCreditsHandler creates a new credits handler instance
func NewCreditsHandler(creditsUseCase usecase.CreditsUseCase, logger coreport.Logger) *CreditsHandler {
	return &CreditsHandler{
		creditsUseCase: creditsUseCase,
		logger:         logger,
	}
}

// GetMine handles the GET /credits/me endpoint
func (h *CreditsHandler) GetMine(c *gin.Context) {
	playerID, ok := currentPlayer(c)
	if !ok {
		return
	}

	credits, err := h.creditsUseCase.GetBalance(c.Request.Context(), playerID)
	if err != nil {
		respondError(c, h.logger, "Error getting credits balance", err, map[string]any{"userId": playerID})
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(credits))
}

// GetMyHistory handles the GET /credits/me/history endpoint
func (h *CreditsHandler) GetMyHistory(c *gin.Context) {
	playerID, ok := currentPlayer(c)
	if !ok {
		return
	}
	limit, offset, ok := parsePaging(c, defaultHistoryLimit, maxHistoryLimit)
	if !ok {
		return
	}

	entries, err := h.creditsUseCase.GetHistory(c.Request.Context(), playerID, limit, offset)
	if err != nil {
		respondError(c, h.logger, "Error getting credits history", err, map[string]any{"userId": playerID})
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryResponse(playerID, limit, offset, entries))
}

// TopUp handles the POST /credits/:userId/top-up endpoint
func (h *CreditsHandler) TopUp(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amount, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, "Invalid top-up amount", err, map[string]any{
			"userId": userID,
			"amount": req.Amount,
		})
		return
	}

	credits, err := h.creditsUseCase.TopUp(c.Request.Context(), usecase.TopUpRequest{
		UserID:      userID,
		Amount:      amount,
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, "Top-up rejected", err, map[string]any{"userId": userID})
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(credits))
}
