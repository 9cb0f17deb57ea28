package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/linkvault/bookmark-api/internal/core/domain"
	"github.com/linkvault/bookmark-api/internal/core/ports"
)

type stubUserService struct {
	meFn     func(ctx context.Context, userID string) (*domain.UserProfile, error)
	updateFn func(ctx context.Context, userID string, fields ports.UpdateUserFields) (*domain.UserProfile, error)
}

func (s *stubUserService) Me(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.meFn(ctx, userID)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID string, fields ports.UpdateUserFields) (*domain.UserProfile, error) {
	return s.updateFn(ctx, userID, fields)
}

func TestUserHandler_Me(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		meFn: func(ctx context.Context, userID string) (*domain.UserProfile, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id %s", userID)
			}
			return &domain.UserProfile{ID: userID, Email: "a@x.com"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := authedContext(e, http.MethodGet, "/users/me", "", "user-1")
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "a@x.com" {
		t.Fatalf("unexpected profile: %+v", resp)
	}
}

func TestUserHandler_Me_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		meFn: func(ctx context.Context, userID string) (*domain.UserProfile, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := authedContext(e, http.MethodGet, "/users/me", "", "")
	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID string, fields ports.UpdateUserFields) (*domain.UserProfile, error) {
			if fields.FirstName == nil || *fields.FirstName != "Kuba" {
				t.Fatalf("first name not forwarded: %+v", fields)
			}
			if fields.Email != nil {
				t.Fatalf("email unexpectedly set")
			}
			return &domain.UserProfile{ID: userID, FirstName: "Kuba"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := authedContext(e, http.MethodPatch, "/users", `{"first_name":"Kuba"}`, "user-1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID string, fields ports.UpdateUserFields) (*domain.UserProfile, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := authedContext(e, http.MethodPatch, "/users", `{"email":"not-an-email"}`, "user-1")
	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Update_Empty(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID string, fields ports.UpdateUserFields) (*domain.UserProfile, error) {
			if !fields.Empty() {
				t.Fatalf("expected empty fields")
			}
			return nil, domain.ErrNoFieldsProvided
		},
	}
	h := NewUserHandler(stub)

	c, _ := authedContext(e, http.MethodPatch, "/users", `{}`, "user-1")
	if err := h.Update(c); !errors.Is(err, domain.ErrNoFieldsProvided) {
		t.Fatalf("expected ErrNoFieldsProvided, got %v", err)
	}
}
