package domain

import "errors"

// Sentinel errors for the auth core. The HTTP layer maps each one to a
// status code exactly once, in internal/api/error_handler.go.
var (
	ErrUserExists         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrForbidden          = errors.New("access forbidden")
)
