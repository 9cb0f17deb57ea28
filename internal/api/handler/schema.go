package handler

import (
	"time"

	"github.com/linkvault/bookmark-api/internal/core/domain"
	"github.com/linkvault/bookmark-api/internal/core/ports"
)

// --- Auth ---

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	AccessToken string             `json:"access_token"`
	ExpiresAt   time.Time          `json:"expires_at"`
	User        domain.UserProfile `json:"user"`
}

func toAuthResponse(r *ports.AuthResult) authResponse {
	return authResponse{
		AccessToken: r.Token,
		ExpiresAt:   r.ExpiresAt,
		User:        r.User,
	}
}

// --- Users ---

type editUserRequest struct {
	Email     *string `json:"email,omitempty"      validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

func (r editUserRequest) toFields() ports.UpdateUserFields {
	return ports.UpdateUserFields{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// --- Bookmarks ---

type createBookmarkRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Link        string `json:"link"        validate:"required,url"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty" validate:"omitempty,url"`
}

func (r editBookmarkRequest) toFields() ports.UpdateBookmarkFields {
	return ports.UpdateBookmarkFields{
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
	}
}

// bookmarkResponse is the transport view of a bookmark. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type bookmarkResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toBookmarkResponse(b *domain.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt.UTC(),
		UpdatedAt:   b.UpdatedAt.UTC(),
	}
}

func toBookmarkListResponse(items []domain.Bookmark) []bookmarkResponse {
	out := make([]bookmarkResponse, len(items))
	for i := range items {
		out[i] = toBookmarkResponse(&items[i])
	}
	return out
}
