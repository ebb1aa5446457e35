package auth

import (
	"context"

	"github.com/tmwansa/gearparts-backend/internal/modules/user"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Register creates a credential-backed user and signs them in.
	Register(ctx context.Context, req RegisterRequest) (*Session, error)

	// Login verifies credentials and issues a signed token.
	Login(ctx context.Context, req LoginRequest) (*Session, error)
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the payload for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful register or login.
type Session struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}
