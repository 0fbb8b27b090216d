package auth

import (
	"context"
	"errors"

	"github.com/nthanfp/vhiweb-assignment/internal/modules/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Authenticate resolves a bearer token to the user it was issued for.
	Authenticate(ctx context.Context, token string) (*user.User, error)
	// Logout revokes a bearer token for the rest of its lifetime.
	Logout(ctx context.Context, token string) error
}
