package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkvault/bookmark-api/internal/core/domain"
	"github.com/linkvault/bookmark-api/internal/core/ports"
)

// ListCache abstracts the per-owner list cache (Redis). Cache faults are
// never fatal: the service logs them and falls through to the repository.
type ListCache interface {
	Get(ctx context.Context, ownerID string) ([]domain.Bookmark, bool, error)
	Set(ctx context.Context, ownerID string, items []domain.Bookmark) error
	Invalidate(ctx context.Context, ownerID string) error
}

// BookmarkService implements owner-scoped bookmark CRUD. The ownerID on every
// call is the caller's verified identity; it is never taken from request
// bodies.
type BookmarkService struct {
	repo   ports.BookmarkRepository
	cache  ListCache
	logger zerolog.Logger
}

func NewBookmarkService(repo ports.BookmarkRepository, cache ListCache, logger zerolog.Logger) *BookmarkService {
	return &BookmarkService{repo: repo, cache: cache, logger: logger}
}

func (s *BookmarkService) List(ctx context.Context, ownerID string) ([]domain.Bookmark, error) {
	if items, ok, err := s.cache.Get(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("list cache read failed, falling back to store")
	} else if ok {
		return items, nil
	}

	items, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, ownerID, items); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("list cache write failed")
	}
	return items, nil
}

// Create stores a new bookmark owned by the caller. Any owner the client
// attempted to supply was already discarded at the transport boundary.
func (s *BookmarkService) Create(ctx context.Context, ownerID string, in ports.CreateBookmarkInput) (*domain.Bookmark, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Bookmark{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	s.logger.Info().Str("bookmark_id", created.ID).Str("owner_id", ownerID).Msg("bookmark created")
	return created, nil
}

func (s *BookmarkService) Get(ctx context.Context, ownerID, id string) (*domain.Bookmark, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

// Update applies a partial edit. A missing bookmark and an ownership mismatch
// both fail with domain.ErrAccessDenied so existence is never confirmed to a
// non-owner.
func (s *BookmarkService) Update(ctx context.Context, ownerID, id string, fields ports.UpdateBookmarkFields) (*domain.Bookmark, error) {
	if fields.Empty() {
		return nil, domain.ErrNoFieldsProvided
	}

	updated, err := s.repo.UpdateByID(ctx, ownerID, id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrBookmarkNotFound) {
			return nil, domain.ErrAccessDenied
		}
		return nil, err
	}

	s.invalidate(ctx, ownerID)
	return updated, nil
}

// Delete removes the bookmark, with the same access semantics as Update.
func (s *BookmarkService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.DeleteByID(ctx, ownerID, id); err != nil {
		if errors.Is(err, domain.ErrBookmarkNotFound) {
			return domain.ErrAccessDenied
		}
		return err
	}

	s.invalidate(ctx, ownerID)
	s.logger.Info().Str("bookmark_id", id).Str("owner_id", ownerID).Msg("bookmark deleted")
	return nil
}

func (s *BookmarkService) invalidate(ctx context.Context, ownerID string) {
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("list cache invalidation failed")
	}
}
