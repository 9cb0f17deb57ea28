package ports

import (
	"context"

	"github.com/linkvault/bookmark-api/internal/core/domain"
)

// CreateBookmarkInput carries the caller-supplied bookmark fields. The owner
// is never part of the input: it is derived from the verified token.
type CreateBookmarkInput struct {
	Title       string
	Description string
	Link        string
}

// BookmarkService defines the owner-scoped use cases. ownerID is the caller's
// verified identity on every operation.
type BookmarkService interface {
	List(ctx context.Context, ownerID string) ([]domain.Bookmark, error)
	Create(ctx context.Context, ownerID string, in CreateBookmarkInput) (*domain.Bookmark, error)
	// Get fails with domain.ErrBookmarkNotFound both for an unknown id and
	// for a bookmark owned by someone else.
	Get(ctx context.Context, ownerID, id string) (*domain.Bookmark, error)
	// Update and Delete fail with domain.ErrAccessDenied both for an unknown
	// id and an ownership mismatch, so existence is never confirmed to
	// non-owners.
	Update(ctx context.Context, ownerID, id string, fields UpdateBookmarkFields) (*domain.Bookmark, error)
	Delete(ctx context.Context, ownerID, id string) error
}
