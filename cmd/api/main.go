package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dailywage-backend/config"
	_ "dailywage-backend/docs" // Important for Swagger
	"dailywage-backend/internal/delivery/http/api"
	"dailywage-backend/internal/repository/postgres"
	"dailywage-backend/internal/usecase"
	"dailywage-backend/pkg/auth"
	"dailywage-backend/pkg/database"
	"dailywage-backend/pkg/logger"
	"dailywage-backend/pkg/redis"
	"dailywage-backend/pkg/security"
	"dailywage-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Daily Wage Jobs API
// @version         1.0
// @description     Providers post daily-wage work, seekers publish availability, both browse each other.
// @host            localhost:5000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting dailywage backend", "port", cfg.Port, "env", cfg.AppEnv)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	secLogger := security.NewSecurityLogger("dailywage-backend", cfg.AppEnv)
	defer secLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolOptions{
		MaxConns:       int32(cfg.DBMaxConns),
		MinConns:       int32(cfg.DBMinConns),
		SimpleProtocol: cfg.DBSimpleProtocol,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	redisClient, err = redis.Connect(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Warn("Redis not configured - rate limiting is per process and login tracking is off")
	case err != nil:
		logger.Log.Warn("Redis unavailable - continuing without it", "error", err)
		redisClient = nil
	default:
		logger.Log.Info("Redis connection established")
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	providerRepo := postgres.NewProviderRepository(dbPool)
	seekerRepo := postgres.NewSeekerRepository(dbPool)
	listingRepo := postgres.NewListingRepository(dbPool)

	// 6. Setup UseCases
	validate := validation.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
	loginTracker := security.NewLoginTracker(redisClient, security.LoginTrackerConfig{
		MaxAttempts:   cfg.FailedLoginMaxAttempts,
		AttemptWindow: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		BlockDuration: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		UseIPTracking: true,
	}, secLogger)

	authUC := usecase.NewAuthUsecase(userRepo, tokens, loginTracker, secLogger, validate)
	providerUC := usecase.NewProviderUsecase(providerRepo, validate)
	seekerUC := usecase.NewSeekerUsecase(seekerRepo, validate)
	listingUC := usecase.NewListingUsecase(listingRepo, validate)

	checks := map[string]usecase.HealthCheck{
		"database": dbPool.Ping,
		"redis":    nil,
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redis.HealthCheck(ctx, redisClient) }
	}
	healthUC := usecase.NewHealthUsecase(checks)

	// 7. Setup Router
	router := api.NewRouter(ctx, api.RouterDeps{
		AuthUC:             authUC,
		ProviderUC:         providerUC,
		SeekerUC:           seekerUC,
		ListingUC:          listingUC,
		HealthUC:           healthUC,
		Tokens:             tokens,
		SecLogger:          secLogger,
		Redis:              redisClient,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Production:         cfg.IsProduction(),
		AuthRateLimit:      cfg.RateLimitAuthThreshold,
		RateLimitWindow:    time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
