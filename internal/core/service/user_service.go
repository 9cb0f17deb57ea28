package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/linkvault/bookmark-api/internal/core/domain"
	"github.com/linkvault/bookmark-api/internal/core/ports"
)

// UserService implements profile read and edit.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Me(ctx context.Context, userID string) (*domain.UserProfile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile applies a partial edit. The email uniqueness invariant holds
// here exactly as at registration: a collision surfaces as
// domain.ErrEmailTaken from the repository.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, fields ports.UpdateUserFields) (*domain.UserProfile, error) {
	if fields.Empty() {
		return nil, domain.ErrNoFieldsProvided
	}

	user, err := s.users.UpdateByID(ctx, userID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")

	profile := user.Profile()
	return &profile, nil
}
