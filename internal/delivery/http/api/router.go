package api

import (
	"context"
	"net/http"
	"time"

	"dailywage-backend/internal/delivery/http/middleware"
	"dailywage-backend/internal/delivery/http/response"
	"dailywage-backend/internal/domain"
	"dailywage-backend/internal/usecase"
	"dailywage-backend/pkg/auth"
	"dailywage-backend/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC     domain.AuthUsecase
	ProviderUC domain.ProviderUsecase
	SeekerUC   domain.SeekerUsecase
	ListingUC  domain.ListingUsecase
	HealthUC   usecase.HealthUsecase
	Tokens     *auth.TokenManager
	SecLogger  *security.SecurityLogger
	// Redis is optional; nil switches rate limiting to the in-memory store.
	Redis              *goredis.Client
	CORSAllowedOrigins []string
	Production         bool
	AuthRateLimit      int
	RateLimitWindow    time.Duration
}

// NewRouter builds the engine. ctx bounds background work such as the
// rate limiter's cleanup loop.
func NewRouter(ctx context.Context, deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Production))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		if deps.HealthUC == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}
		// Always 200; per-dependency status is in data
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		message := "System operational"
		if !healthy {
			message = "System degraded"
		}
		response.Success(c, http.StatusOK, message, status)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := middleware.NewRateLimiter(ctx, deps.Redis, deps.SecLogger)
	authMW := middleware.AuthMiddleware(deps.Tokens, deps.SecLogger)

	authPublic := api.Group("/auth")
	authPublic.Use(limiter.Middleware(middleware.AuthRateLimitConfig(deps.AuthRateLimit, deps.RateLimitWindow)))
	authProtected := api.Group("/auth")
	authProtected.Use(authMW)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMW)
	{
		NewAuthHandler(authPublic, authProtected, deps.AuthUC)
		NewProviderHandler(protected, deps.ProviderUC, deps.ListingUC)
		NewSeekerHandler(protected, deps.SeekerUC)
	}

	return r
}
