package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/invoiceocr/backend/internal/token"
)

// Context keys populated by Authenticate and read by downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Authenticate validates the Bearer access token and injects the identity
// claims into the request context. Every verification failure yields the
// same generic 401; which check failed is never revealed. The token is
// self-contained, so no store round-trip happens on this path.
func Authenticate(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.VerifyAccess(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
