package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linkvault/bookmark-api/internal/core/domain"
)

const listTTL = 5 * time.Minute

// ListCache caches each owner's bookmark list as a JSON blob with a short
// TTL. Key format: bookmarks:<owner_id>. Mutations invalidate the whole key;
// there is no per-item caching.
type ListCache struct {
	client *redis.Client
}

// NewListCache creates a ListCache wrapping the given Redis client.
func NewListCache(client *redis.Client) *ListCache {
	return &ListCache{client: client}
}

// Get returns the cached list for ownerID. The second return value is false
// on a cache miss.
func (c *ListCache) Get(ctx context.Context, ownerID string) ([]domain.Bookmark, bool, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var items []domain.Bookmark
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return items, true, nil
}

// Set stores the list for ownerID, expiring after listTTL.
func (c *ListCache) Set(ctx context.Context, ownerID string, items []domain.Bookmark) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(ownerID), raw, listTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list for ownerID.
func (c *ListCache) Invalidate(ctx context.Context, ownerID string) error {
	if err := c.client.Del(ctx, c.key(ownerID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *ListCache) key(ownerID string) string {
	return "bookmarks:" + ownerID
}
