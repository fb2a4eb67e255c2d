package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invoiceocr/backend/internal/api/middleware"
)

// ctxUserID extracts the user ID injected by the Authenticate middleware.
// An empty value means the middleware did not run on this route; fail
// with 401 before any service call.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
