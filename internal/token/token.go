// Package token issues and verifies the signed JWTs that carry user
// identity. Access and refresh tokens are signed with independent secrets
// so a leaked access secret cannot mint long-lived refresh tokens, and a
// refresh token can never pass access verification.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/invoiceocr/backend/internal/core/domain"
)

const (
	Issuer   = "invoice-ocr-api"
	Audience = "invoice-ocr-client"

	DefaultAccessTTL  = time.Hour
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Claims is the identity payload embedded in both token kinds.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Identity is the subset of claims the rest of the system consumes.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// Manager signs and verifies access and refresh tokens.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Manager {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// IssueAccess signs a short-lived access token for the given identity.
func (m *Manager) IssueAccess(id Identity) (string, error) {
	return m.sign(id, m.accessSecret, m.accessTTL)
}

// IssueRefresh signs a long-lived refresh token for the given identity.
// Each refresh token carries a unique JTI so it can be consumed exactly
// once by the refresh flow.
func (m *Manager) IssueRefresh(id Identity) (string, error) {
	return m.sign(id, m.refreshSecret, m.refreshTTL)
}

// IssuePair issues an access and a refresh token for the same identity.
func (m *Manager) IssuePair(id Identity) (access, refresh string, err error) {
	if access, err = m.IssueAccess(id); err != nil {
		return "", "", err
	}
	if refresh, err = m.IssueRefresh(id); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// VerifyAccess validates an access token and returns its claims.
// Any failure (signature, structure, issuer, audience, expiry) collapses
// to domain.ErrInvalidToken.
func (m *Manager) VerifyAccess(tokenString string) (*Claims, error) {
	return m.verify(tokenString, m.accessSecret)
}

// VerifyRefresh validates a refresh token and returns its claims.
func (m *Manager) VerifyRefresh(tokenString string) (*Claims, error) {
	return m.verify(tokenString, m.refreshSecret)
}

func (m *Manager) sign(id Identity, secret []byte, ttl time.Duration) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Email: id.Email,
		Role:  id.Role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *Manager) verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil || !t.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Identity extracts the flat identity tuple from verified claims.
func (c *Claims) Identity() Identity {
	return Identity{UserID: c.Subject, Email: c.Email, Role: c.Role}
}

// RemainingLifetime reports how long the token is still valid, clamped at
// zero. Used to size revocation-list TTLs.
func (c *Claims) RemainingLifetime(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	d := c.ExpiresAt.Time.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
