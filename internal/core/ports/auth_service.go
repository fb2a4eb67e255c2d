package ports

import (
	"context"

	"github.com/invoiceocr/backend/internal/core/domain"
)

// RegisterInput carries the validated registration payload. Input
// validation (email syntax, password policy) happens at the HTTP layer;
// the service may assume these preconditions hold.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Company   string
}

// TokenPair is an access/refresh token set issued together.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult is returned by register and login: the account plus a fresh
// token pair.
type AuthResult struct {
	User   *domain.User `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPair, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	VerifyEmail(ctx context.Context, userID string) error
}
