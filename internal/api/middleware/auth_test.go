package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/invoiceocr/backend/internal/token"
)

func testTokens() *token.Manager {
	return token.NewManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func authedContext(t *testing.T, e *echo.Echo, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := testTokens()
	signed, err := tokens.IssueAccess(token.Identity{UserID: "user-1", Email: "alice@example.com", Role: "admin"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := authedContext(t, e, "Bearer "+signed)

	called := false
	mw := Authenticate(tokens)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(CtxUserID) != "user-1" {
			t.Fatalf("user id not set")
		}
		if c.Get(CtxEmail) != "alice@example.com" {
			t.Fatalf("email not set")
		}
		if c.Get(CtxRole) != "admin" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	tokens := testTokens()

	expiredClaims := jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    token.Issuer,
		Audience:  jwt.ClaimStrings{token.Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("access-secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	refresh, err := tokens.IssueRefresh(token.Identity{UserID: "user-1"})
	if err != nil {
		t.Fatalf("issue refresh token: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"malformed scheme", "Token abc"},
		{"not a token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"refresh token on access path", "Bearer " + refresh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			c, rec := authedContext(t, e, tc.header)

			mw := Authenticate(tokens)
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
