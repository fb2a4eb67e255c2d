package handler

// --- Request types ---

// registerRequest mirrors the public registration payload. The password
// rule enforces the policy the auth service assumes as a precondition:
// at least 8 characters with a lowercase letter, an uppercase letter and
// a digit.
type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,password"`
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName"  validate:"required,min=2,max=50"`
	Company   string `json:"company"   validate:"omitempty,max=100"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// logoutRequest optionally carries the refresh token to revoke. Access
// tokens are stateless and expire on their own.
type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,password"`
}

// --- Response envelope ---

// envelope is the canonical success wrapper:
// {"success": true, "message": ..., "data": {...}}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
