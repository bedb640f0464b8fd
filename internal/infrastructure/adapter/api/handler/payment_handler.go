package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler receives payment gateway callbacks over HTTP
type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

// HandleEvent handles the POST /payments/events endpoint
func (h *PaymentHandler) HandleEvent(c *gin.Context) {
	var req dto.PaymentEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.paymentUseCase.HandleSignal(c.Request.Context(), req.Signal())
	if err != nil {
		respondError(c, h.logger, "Payment event rejected", err, map[string]any{
			"kind":          req.Kind,
			"gameId":        req.GameID,
			"playerId":      req.PlayerID,
			"transactionId": req.TransactionID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentEventResponse(result))
}
