package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/invoiceocr/backend/internal/core/domain"
	"github.com/invoiceocr/backend/internal/core/ports"
	"github.com/invoiceocr/backend/internal/password"
	"github.com/invoiceocr/backend/internal/token"
)

// dummyHash is a valid bcrypt hash of a random string. Login runs a
// compare against it when the email is unknown so the unknown-email and
// wrong-password paths take comparable time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration, login, token refresh and profile
// retrieval over a UserRepository, the token manager and the refresh-token
// revocation list.
type AuthService struct {
	repo    ports.UserRepository
	tokens  *token.Manager
	revoker ports.TokenRevoker
	logger  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager, revoker ports.TokenRevoker, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, revoker: revoker, logger: logger}
}

// Register creates a new account and issues a token pair. A duplicate
// email fails with domain.ErrUserExists before any row is written.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Company:      input.Company,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	pair, err := s.issuePair(created)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	return &ports.AuthResult{User: created, Tokens: pair}, nil
}

// Login verifies credentials and issues a fresh token pair. An unknown
// email and a wrong password both fail with the same
// domain.ErrInvalidCredentials; neither the message nor the timing reveals
// which check failed.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*ports.AuthResult, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_, _ = password.Verify(pass, dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := password.Verify(pass, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user logged in")

	return &ports.AuthResult{User: user, Tokens: pair}, nil
}

// RefreshToken redeems a refresh token for a new token pair. Refresh
// tokens are single-use: the presented token's JTI is atomically
// consumed for its remaining lifetime, and a JTI seen twice fails even
// when the redemptions race. Every verification failure collapses to
// domain.ErrInvalidToken.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (ports.TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return ports.TokenPair{}, domain.ErrInvalidToken
	}

	// Consume before any further work so two racing redemptions of the
	// same token can never both succeed. A burned JTI on a later failure
	// path only costs the caller a re-login.
	alreadyUsed, err := s.revoker.Consume(ctx, claims.ID, claims.RemainingLifetime(time.Now()))
	if err != nil {
		return ports.TokenPair{}, err
	}
	if alreadyUsed {
		return ports.TokenPair{}, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ports.TokenPair{}, domain.ErrInvalidToken
		}
		return ports.TokenPair{}, err
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return ports.TokenPair{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("token refreshed")

	return pair, nil
}

// GetProfile returns the account for userID. The password hash is dropped
// by the User json tag on every serialization path.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Logout revokes the presented refresh token so it cannot be redeemed
// afterwards. An invalid or already-expired token is not an error; there
// is nothing left to revoke.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil
	}
	_, err = s.revoker.Consume(ctx, claims.ID, claims.RemainingLifetime(time.Now()))
	return err
}

// ChangePassword verifies the current password before storing a hash of
// the new one. A wrong current password fails with
// domain.ErrInvalidCredentials.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := password.Verify(currentPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password changed")
	return nil
}

// VerifyEmail marks the account as verified. Re-applying is a no-op.
func (s *AuthService) VerifyEmail(ctx context.Context, userID string) error {
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.repo.VerifyEmail(ctx, userID)
}

func (s *AuthService) issuePair(user *domain.User) (ports.TokenPair, error) {
	access, refresh, err := s.tokens.IssuePair(token.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
