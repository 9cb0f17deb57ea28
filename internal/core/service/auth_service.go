package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkvault/bookmark-api/internal/core/domain"
	"github.com/linkvault/bookmark-api/internal/core/ports"
	"github.com/linkvault/bookmark-api/internal/security/password"
	"github.com/linkvault/bookmark-api/internal/security/token"
)

// AuthService implements signup and signin by orchestrating the user
// repository, the password hasher, and the token issuer. All collaborators
// are injected at construction.
type AuthService struct {
	users  ports.UserRepository
	hasher password.Hasher
	tokens *token.Service
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher password.Hasher, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Signup hashes the password, creates the identity, and issues a token for
// it. A duplicate email fails with domain.ErrEmailTaken before any token is
// issued; no partial state is left behind.
func (s *AuthService) Signup(ctx context.Context, email, pass string) (*ports.AuthResult, error) {
	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")

	return s.issue(created)
}

// Signin verifies the supplied credentials and issues a token. Unknown email
// and wrong password are distinguishable here (logged at debug level) but
// collapse into domain.ErrInvalidCredentials at the boundary so callers
// cannot enumerate registered emails.
func (s *AuthService) Signin(ctx context.Context, email, pass string) (*ports.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Str("reason", "unknown_email").Msg("signin rejected")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, pass) {
		s.logger.Debug().Str("reason", "password_mismatch").Str("user_id", user.ID).Msg("signin rejected")
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *domain.User) (*ports.AuthResult, error) {
	tok, expiresAt, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{
		Token:     tok,
		ExpiresAt: expiresAt,
		User:      user.Profile(),
	}, nil
}
