// File: internal/auth/model.go
package auth

import (
	"campus_lostfound_backend/internal/shared"
	"campus_lostfound_backend/internal/user"
)

// RegisterRequest defines the payload for creating a new account.
type RegisterRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=100"`
	Email    string  `json:"email" binding:"required,email,max=255"`
	Password string  `json:"password" binding:"required,min=8,max=72"` // bcrypt max is 72 bytes
	FullName string  `json:"full_name" binding:"required,max=150"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Role     string  `json:"role,omitempty" binding:"omitempty,oneof=student admin"`
}

// LoginRequest defines the payload for username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest defines the payload for exchanging a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse bundles the issued tokens with the user profile.
type AuthResponse struct {
	User   user.UserResponse    `json:"user"`
	Tokens shared.TokenResponse `json:"tokens"`
}
