package ports

import (
	"context"

	"github.com/linkvault/bookmark-api/internal/core/domain"
)

// UpdateBookmarkFields carries a partial bookmark update. Nil fields are left
// untouched.
type UpdateBookmarkFields struct {
	Title       *string
	Description *string
	Link        *string
}

// Empty reports whether the update carries no fields at all.
func (f UpdateBookmarkFields) Empty() bool {
	return f.Title == nil && f.Description == nil && f.Link == nil
}

// BookmarkRepository defines persistence for owner-scoped bookmarks.
// Every lookup and mutation filters by ownerID in the same query, so a
// bookmark owned by someone else is indistinguishable from one that does not
// exist: both surface as domain.ErrBookmarkNotFound.
type BookmarkRepository interface {
	Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Bookmark, error)
	FindByID(ctx context.Context, ownerID, id string) (*domain.Bookmark, error)
	UpdateByID(ctx context.Context, ownerID, id string, fields UpdateBookmarkFields) (*domain.Bookmark, error)
	DeleteByID(ctx context.Context, ownerID, id string) error
}
