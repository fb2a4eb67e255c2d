package ports

import (
	"context"

	"github.com/invoiceocr/backend/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Create returns domain.ErrUserExists on a duplicate email; the Find
// methods return domain.ErrUserNotFound when no row matches. The targeted
// mutations are idempotent.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	VerifyEmail(ctx context.Context, id string) error
}
