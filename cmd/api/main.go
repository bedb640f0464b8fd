package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portcache "github.com/amirhossein-jamali/game-booking/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/capacity"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/credits"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/game"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/lifecycle"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/registration"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/reservation"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/unitofwork"

	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/logger"
	appmessaging "github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/messaging"
	timeProvider "github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLoggerWithConfig(logger.Config{
		Level:   cfg.Logger.Level,
		Format:  cfg.Logger.Format,
		Service: cfg.Logger.Service,
	})

	tp := timeProvider.NewRealTimeProvider()
	ids := idgen.NewUUIDGenerator()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	dbManager := database.NewManager(database.CreateConfigFromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(rootCtx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if cfg.Database.AutoMigrate {
		if err := dbManager.Migrate(rootCtx); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	// Occupancy cache and rate limiter share one Redis client
	var (
		occupancyCache portcache.OccupancyCache = cache.NewNoopOccupancyCache()
		rateLimiter    middleware.Limiter
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(rootCtx, cache.ClientConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, appLogger)
		if err != nil {
			appLogger.Error("Failed to connect to redis", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer closeRedis(redisClient, appLogger)

		occupancyCache = cache.NewRedisOccupancyCache(redisClient, cfg.Redis.OccupancyTTL, appLogger)
		if cfg.Redis.RateLimitRPS > 0 {
			rateLimiter = cache.NewRateLimiter(redisClient, cfg.Redis.RateLimitRPS, cfg.Redis.RateLimitBurst, tp)
		}
	}

	// Lifecycle events go to RabbitMQ when enabled, to the log otherwise
	var publisher messaging.EventPublisher = appmessaging.NewLogPublisher(appLogger)
	if cfg.RabbitMQ.Enabled {
		rabbitPublisher, err := appmessaging.NewRabbitPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.EventsExchange, tp, appLogger)
		if err != nil {
			appLogger.Error("Failed to connect to rabbitmq", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
	}

	// Initialize use cases
	uow := dbManager.CreateUnitOfWork()
	runner := unitofwork.NewRunner(uow, appLogger, cfg.Booking.MaxTxRetries)
	notifier := lifecycle.NewNotifier(publisher, occupancyCache, tp, appLogger)
	capacityLedger := capacity.NewLedger(uow)
	creditsLedger := credits.NewLedger(uow, ids, tp, appLogger)

	gameService := game.NewService(uow, tp, appLogger)
	occupancyService := capacity.NewOccupancyService(runner, uow, capacityLedger, occupancyCache, tp, appLogger)
	creditsService := credits.NewService(runner, uow, creditsLedger, cfg.Booking.DefaultCurrency, appLogger)
	reservationService := reservation.NewService(
		runner, uow, capacityLedger, notifier, ids, tp, appLogger, cfg.Booking.ReservationTTL,
	)
	registrationService := registration.NewService(
		runner, uow, capacityLedger, creditsLedger, notifier, ids, tp, appLogger,
	)
	paymentService := payment.NewService(runner, uow, registrationService, reservationService, tp, appLogger)

	// Create demo data
	if cfg.Booking.SeedDemoData {
		if err := migration.SeedDemoData(rootCtx, gameService, creditsService, cfg.Booking.DefaultCurrency, tp.Now()); err != nil {
			appLogger.Error("Failed to seed demo data", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Background workers
	var sweeper *reservation.Sweeper
	if cfg.Booking.SweeperEnabled {
		sweeper = reservation.NewSweeper(uow, dbManager.CreateLeaseRepository(), tp, appLogger, reservation.SweeperConfig{
			Interval:  cfg.Booking.SweepInterval,
			Grace:     cfg.Booking.SweepGrace,
			BatchSize: cfg.Booking.SweepBatchSize,
			Holder:    instanceName(),
		})
		sweeper.Start(rootCtx)
	}

	consumerDone := make(chan struct{})
	if cfg.RabbitMQ.Enabled && cfg.RabbitMQ.PaymentQueue != "" {
		consumer := appmessaging.NewGatewayConsumer(appmessaging.ConsumerConfig{
			URL:         cfg.RabbitMQ.URL,
			Queue:       cfg.RabbitMQ.PaymentQueue,
			ConsumerTag: cfg.RabbitMQ.ConsumerTag,
			Prefetch:    cfg.RabbitMQ.Prefetch,
		}, paymentService, appLogger)
		go func() {
			defer close(consumerDone)
			if err := consumer.Run(rootCtx); err != nil {
				appLogger.Error("Payment signal consumer failed", map[string]any{
					"error": err.Error(),
				})
			}
		}()
	} else {
		close(consumerDone)
	}

	// Initialize API handlers
	handlers := routes.Handlers{
		Game:         handler.NewGameHandler(gameService, occupancyService, appLogger),
		Reservation:  handler.NewReservationHandler(reservationService, appLogger),
		Registration: handler.NewRegistrationHandler(registrationService, appLogger),
		Credits:      handler.NewCreditsHandler(creditsService, appLogger),
		Payment:      handler.NewPaymentHandler(paymentService, appLogger),
		Health:       handler.NewHealthHandler(dbManager, tp, appLogger),
	}

	opts := routes.Options{
		Auth: middleware.AuthConfig{
			Secret: cfg.Auth.JWTSecret,
			Issuer: cfg.Auth.Issuer,
		},
		AdminRole:    cfg.Auth.AdminRole,
		GatewayRole:  cfg.Auth.GatewayRole,
		RateLimiter:  rateLimiter,
		AllowOrigins: cfg.Server.AllowedOrigins,
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, opts, ids, appLogger)
	routes.SetupRoutes(router, handlers, opts, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":            server.Addr,
			"env":             cfg.Environment,
			"reservation_ttl": cfg.Booking.ReservationTTL.String(),
			"db_driver":       cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			stop()
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-rootCtx.Done()
	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if sweeper != nil {
		sweeper.Stop()
	}

	select {
	case <-consumerDone:
	case <-ctx.Done():
		appLogger.Warn("Payment signal consumer did not stop in time", nil)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// instanceName identifies this process when it competes for job leases
func instanceName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return fmt.Sprintf("%s-%d-%d", host, os.Getpid(), time.Now().UnixNano()%1_000_000)
}

func closeRedis(client *redis.Client, appLogger coreport.Logger) {
	if err := client.Close(); err != nil {
		appLogger.Warn("Failed to close redis client", map[string]any{
			"error": err.Error(),
		})
	}
}
