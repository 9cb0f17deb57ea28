package domain

import (
	"errors"
	"time"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")
var ErrAccessDenied = errors.New("access to resource denied")

// Bookmark is an owned record. OwnerID is set once at creation and never
// reassigned; every read and write is filtered by it.
type Bookmark struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
