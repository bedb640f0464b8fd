package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// GameHandler handles game and occupancy requests
type GameHandler struct {
	gameUseCase      usecase.GameUseCase
	occupancyUseCase usecase.OccupancyUseCase
	logger           coreport.Logger
}

// NewGameHandler creates a new game handler instance
func NewGameHandler(
	gameUseCase usecase.GameUseCase,
	occupancyUseCase usecase.OccupancyUseCase,
	logger coreport.Logger,
) *GameHandler {
	return &GameHandler{
		gameUseCase:      gameUseCase,
		occupancyUseCase: occupancyUseCase,
		logger:           logger,
	}
}

// CreateGame handles the POST /games endpoint
func (h *GameHandler) CreateGame(c *gin.Context) {
	callerID, ok := currentPlayer(c)
	if !ok {
		return
	}

	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	price, err := entity.ParseAmount(req.Price)
	if err != nil {
		respondError(c, h.logger, "Invalid game price", err, map[string]any{"price": req.Price})
		return
	}

	hostID := req.HostID
	if hostID == 0 {
		hostID = callerID
	}

	game, err := h.gameUseCase.CreateGame(c.Request.Context(), usecase.CreateGameRequest{
		HostID:     hostID,
		Title:      req.Title,
		MaxPlayers: req.MaxPlayers,
		Price:      price,
		Currency:   req.Currency,
		Datetime:   req.Datetime,
	})
	if err != nil {
		respondError(c, h.logger, "Error creating game", err, map[string]any{"hostId": hostID})
		return
	}

	c.JSON(http.StatusCreated, dto.NewGameResponse(game))
}

// GetGame handles the GET /games/:gameId endpoint
func (h *GameHandler) GetGame(c *gin.Context) {
	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}

	game, err := h.gameUseCase.GetGame(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, h.logger, "Error getting game", err, map[string]any{"gameId": gameID})
		return
	}

	c.JSON(http.StatusOK, dto.NewGameResponse(game))
}

// GetOccupancy handles the GET /games/:gameId/occupancy endpoint
func (h *GameHandler) GetOccupancy(c *gin.Context) {
	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}

	occupancy, err := h.occupancyUseCase.GetOccupancy(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, h.logger, "Error getting occupancy", err, map[string]any{"gameId": gameID})
		return
	}

	c.JSON(http.StatusOK, dto.NewOccupancyResponse(occupancy))
}
