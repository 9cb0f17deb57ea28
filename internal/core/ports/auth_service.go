package ports

import (
	"context"
	"time"

	"github.com/linkvault/bookmark-api/internal/core/domain"
)

// AuthResult is returned on successful signup or signin.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.UserProfile
}

type AuthService interface {
	// Signup registers a new account and issues a session token.
	// Fails with domain.ErrEmailTaken when the email is already registered.
	Signup(ctx context.Context, email, password string) (*AuthResult, error)
	// Signin verifies credentials and issues a session token. Unknown email
	// and wrong password both fail with domain.ErrInvalidCredentials.
	Signin(ctx context.Context, email, password string) (*AuthResult, error)
}
