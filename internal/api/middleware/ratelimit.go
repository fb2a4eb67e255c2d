package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/invoiceocr/backend/internal/api/metrics"
	"github.com/invoiceocr/backend/internal/infrastructure/db/redis"
)

// RateLimitConfig bounds how many requests a client IP may make to a
// route group within a fixed window.
type RateLimitConfig struct {
	// Scope names the limiter in Redis keys and metrics, e.g. "auth".
	Scope  string
	Limit  int64
	Window time.Duration
}

// AuthRateLimit is the strict limit applied to register and login,
// matching the behaviour of the original API: 5 attempts per 15 minutes.
var AuthRateLimit = RateLimitConfig{Scope: "auth", Limit: 5, Window: 15 * time.Minute}

// RateLimit rejects requests beyond the configured budget with 429. The
// counter lives in Redis so the limit holds across replicas. A counter
// failure is logged and the request admitted; availability wins over
// strictness here.
func RateLimit(counter *redis.RateCounter, cfg RateLimitConfig, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := counter.Incr(c.Request().Context(), cfg.Scope, c.RealIP(), cfg.Window)
			if err != nil {
				log.Warn().Err(err).Str("scope", cfg.Scope).Msg("rate counter unavailable, admitting request")
				return next(c)
			}

			if count > cfg.Limit {
				metrics.RateLimitedTotal.WithLabelValues(cfg.Scope).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}
			return next(c)
		}
	}
}
