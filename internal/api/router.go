package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/invoiceocr/backend/internal/api/handler"
	"github.com/invoiceocr/backend/internal/api/middleware"
	"github.com/invoiceocr/backend/internal/core/domain"
	"github.com/invoiceocr/backend/internal/core/service"
	"github.com/invoiceocr/backend/internal/infrastructure/config"
	"github.com/invoiceocr/backend/internal/infrastructure/db/postgres"
	"github.com/invoiceocr/backend/internal/infrastructure/db/redis"
	"github.com/invoiceocr/backend/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("invoiceocr"))

	// --- Dependencies ---
	tokens := token.NewManager(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	userRepo := postgres.NewUserRepository(pool)
	revocations := redis.NewRevocationList(rdb)
	rateCounter := redis.NewRateCounter(rdb)

	authService := service.NewAuthService(userRepo, tokens, revocations, log)
	authHandler := handler.NewAuthHandler(authService)

	authenticate := middleware.Authenticate(tokens)
	authLimiter := middleware.RateLimit(rateCounter, middleware.AuthRateLimit, log)

	// --- API v1 ---
	v1 := e.Group("/api/v1")

	v1.GET("/", versionInfo)

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register, authLimiter)
	auth.POST("/login", authHandler.Login, authLimiter)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/profile", authHandler.Profile, authenticate)
	auth.POST("/logout", authHandler.Logout, authenticate)
	auth.PUT("/password", authHandler.ChangePassword, authenticate)
	auth.POST("/verify-email", authHandler.VerifyEmail, authenticate)

	// TODO: mount /invoices and /analytics groups once those modules land.
	admin := v1.Group("/admin", authenticate, middleware.Authorize(domain.RoleAdmin))
	admin.GET("/status", adminStatus)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness - is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness - are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// adminStatus is a placeholder for the admin surface; it proves the
// role gate end to end until real admin handlers exist.
func adminStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "admin access granted",
	})
}

// versionInfo answers GET /api/v1/ with the API surface summary.
func versionInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Invoice OCR API v1",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"auth": "/api/v1/auth",
		},
	})
}
