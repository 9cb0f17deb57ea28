package ports

import (
	"context"

	"github.com/linkvault/bookmark-api/internal/core/domain"
)

type UserService interface {
	// Me returns the caller's public profile.
	Me(ctx context.Context, userID string) (*domain.UserProfile, error)
	// UpdateProfile applies a partial profile edit. An empty field set fails
	// with domain.ErrNoFieldsProvided; an email collision with
	// domain.ErrEmailTaken.
	UpdateProfile(ctx context.Context, userID string, fields UpdateUserFields) (*domain.UserProfile, error)
}
