package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invoiceocr/backend/internal/api/metrics"
	"github.com/invoiceocr/backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: "User registered successfully",
		Data:    result,
	})
}

// Login authenticates a user and returns a token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}

// Refresh exchanges a valid refresh token for a new token pair.
//
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tokens, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Token refreshed successfully",
		Data:    map[string]any{"tokens": tokens},
	})
}

// Profile returns the authenticated user's account, password hash stripped.
//
// @Summary      Get current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]any
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    map[string]any{"user": user},
	})
}

// Logout revokes the supplied refresh token.
//
// @Summary      Logout
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]any
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req logoutRequest
	_ = c.Bind(&req) // body is optional

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Logout successful",
	})
}

// ChangePassword replaces the authenticated user's password after
// verifying the current one.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Password updated successfully",
	})
}

// VerifyEmail marks the authenticated user's email as verified.
//
// @Summary      Verify email
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]any
// @Router       /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.authService.VerifyEmail(c.Request().Context(), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Email verified successfully",
	})
}
