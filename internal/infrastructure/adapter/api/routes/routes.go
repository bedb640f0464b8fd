package routes

import (
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Game         *handler.GameHandler
	Reservation  *handler.ReservationHandler
	Registration *handler.RegistrationHandler
	Credits      *handler.CreditsHandler
	Payment      *handler.PaymentHandler
	Health       *handler.HealthHandler
}

// Options holds the security settings of the API
type Options struct {
	Auth         middleware.AuthConfig
	AdminRole    string
	GatewayRole  string
	RateLimiter  middleware.Limiter // nil disables rate limiting
	AllowOrigins []string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, opts Options, logger coreport.Logger) {
	router.GET("/health", handlers.Health.Health)

	api := router.Group("/api/v1")
	api.Use(middleware.JWTAuth(opts.Auth, logger))
	if opts.RateLimiter != nil {
		api.Use(middleware.RateLimit(opts.RateLimiter, logger))
	}

	admin := middleware.RequireRole(opts.AdminRole)

	games := api.Group("/games")
	{
		// POST /api/v1/games
		games.POST("", admin, handlers.Game.CreateGame)

		// GET /api/v1/games/:gameId
		games.GET("/:gameId", handlers.Game.GetGame)

		// GET /api/v1/games/:gameId/occupancy
		games.GET("/:gameId/occupancy", handlers.Game.GetOccupancy)

		// POST|DELETE /api/v1/games/:gameId/reservations
		games.POST("/:gameId/reservations", handlers.Reservation.Reserve)
		games.DELETE("/:gameId/reservations", handlers.Reservation.Release)

		// POST /api/v1/games/:gameId/registrations/{confirm,cancel}
		games.POST("/:gameId/registrations/confirm", handlers.Registration.Confirm)
		games.POST("/:gameId/registrations/cancel", handlers.Registration.Cancel)

		// GET /api/v1/games/:gameId/registrations/me
		games.GET("/:gameId/registrations/me", handlers.Registration.GetMine)
	}

	credits := api.Group("/credits")
	{
		credits.GET("/me", handlers.Credits.GetMine)
		credits.GET("/me/history", handlers.Credits.GetMyHistory)
		credits.POST("/:userId/top-up", admin, handlers.Credits.TopUp)
	}

	// Gateway callbacks are signed by the gateway's service token
	api.POST("/payments/events", middleware.RequireRole(opts.AdminRole, opts.GatewayRole), handlers.Payment.HandleEvent)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, opts Options, idGenerator coreport.IDGenerator, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID(idGenerator))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(opts.AllowOrigins))
}
