package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/invoiceocr/backend/internal/core/domain"
)

func rbacContext(e *echo.Echo, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(CtxUserID, userID)
	}
	if role != "" {
		c.Set(CtxRole, role)
	}
	return c, rec
}

func TestAuthorize_AllowedRole(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, "user-1", domain.RoleAdmin)

	called := false
	handler := Authorize(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with next called, got %d", rec.Code)
	}
}

func TestAuthorize_InsufficientRole(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, "user-1", domain.RoleUser)

	handler := Authorize(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthorize_DefaultsToUserRole(t *testing.T) {
	// A token without a role claim counts as "user".
	e := echo.New()
	c, rec := rbacContext(e, "user-1", "")

	handler := Authorize(domain.RoleUser)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthorize_MissingClaims(t *testing.T) {
	e := echo.New()
	c, rec := rbacContext(e, "", "")

	handler := Authorize(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
