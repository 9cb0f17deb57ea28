package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linkvault/bookmark-api/internal/core/domain"
	"github.com/linkvault/bookmark-api/internal/security/token"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the error envelope: %v (%s)", err, rec.Body.String())
	}
	return rec, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "credentials taken"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"expired token", token.ErrExpiredToken, http.StatusUnauthorized, "token expired"},
		{"invalid token", token.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"access denied", domain.ErrAccessDenied, http.StatusForbidden, "access to resource denied"},
		{"bookmark not found", domain.ErrBookmarkNotFound, http.StatusNotFound, "bookmark not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"no fields provided", domain.ErrNoFieldsProvided, http.StatusBadRequest, "no fields provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, msg := renderError(t, tt.err)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if msg != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("update bookmark"), domain.ErrAccessDenied)

	rec, _ := renderError(t, wrapped)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrapped sentinel not resolved, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg != "invalid payload" {
		t.Fatalf("expected echo message to pass through, got %q", msg)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	cause := errors.New("mongo: connection reset")

	rec, msg := renderError(t, cause)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg != "internal server error" {
		t.Fatalf("expected generic message, got %q", msg)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal cause leaked to the client: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusNoContent); err != nil {
		t.Fatalf("commit response: %v", err)
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(errors.New("late failure"), c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("committed response was overwritten: %d", rec.Code)
	}
}
