package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/linkvault/bookmark-api/internal/core/domain"
	"github.com/linkvault/bookmark-api/internal/core/ports"
)

func strptr(s string) *string { return &s }

func seedUser(repo *stubUserRepo, email string) *domain.User {
	created, _ := repo.Create(context.Background(), &domain.User{Email: email, PasswordHash: "hash"})
	return created
}

func TestUserService_Me(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(repo, "a@x.com")

	profile, err := svc.Me(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if profile.ID != user.ID || profile.Email != "a@x.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestUserService_Me_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Me(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile_Empty(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(repo, "a@x.com")

	if _, err := svc.UpdateProfile(context.Background(), user.ID, ports.UpdateUserFields{}); !errors.Is(err, domain.ErrNoFieldsProvided) {
		t.Fatalf("expected ErrNoFieldsProvided, got %v", err)
	}
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(repo, "a@x.com")

	profile, err := svc.UpdateProfile(context.Background(), user.ID, ports.UpdateUserFields{
		Email:     strptr("changed@x.com"),
		FirstName: strptr("Kuba"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if profile.Email != "changed@x.com" || profile.FirstName != "Kuba" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	// The old address is gone: lookups against it must miss.
	if _, err := repo.FindByEmail(context.Background(), "a@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("old email still resolves after update")
	}
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(repo, "taken@x.com")
	user := seedUser(repo, "a@x.com")

	_, err := svc.UpdateProfile(context.Background(), user.ID, ports.UpdateUserFields{Email: strptr("taken@x.com")})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}
