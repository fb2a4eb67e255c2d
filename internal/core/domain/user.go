package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models a registered account. PasswordHash is excluded from JSON so
// the hash can never leak through a response that embeds the struct.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Company      string     `json:"company,omitempty"`
	Role         string     `json:"role"`
	IsVerified   bool       `json:"isVerified"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// ValidRole reports whether r is one of the enumerated roles.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}
