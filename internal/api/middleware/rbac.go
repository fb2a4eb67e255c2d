package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invoiceocr/backend/internal/core/domain"
)

// Authorize enforces role-based access control. It requires Authenticate
// to have run first: missing claims yield 401, a role outside the allowed
// set yields 403. A token without a role claim counts as the default
// "user" role. Pure function of the request context, no I/O.
func Authorize(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(CtxUserID).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				role = domain.RoleUser
			}

			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
