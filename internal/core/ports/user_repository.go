package ports

import (
	"context"

	"github.com/linkvault/bookmark-api/internal/core/domain"
)

// UpdateUserFields carries a partial profile update. Nil fields are left
// untouched by the repository.
type UpdateUserFields struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// Empty reports whether the update carries no fields at all.
func (f UpdateUserFields) Empty() bool {
	return f.Email == nil && f.FirstName == nil && f.LastName == nil
}

// UserRepository defines persistence for account identities.
// The datastore enforces email uniqueness atomically: a duplicate insert or
// update surfaces as domain.ErrEmailTaken, any other fault is wrapped and
// propagated.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateByID(ctx context.Context, id string, fields UpdateUserFields) (*domain.User, error)
}
