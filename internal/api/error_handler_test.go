package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/busybee/admin-gateway/internal/api/middleware"
	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/infrastructure/session"
)

const testCookie = "busybee_session"

func render(t *testing.T, handler echo.HTTPErrorHandler, err error, prepare func(echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if prepare != nil {
		prepare(c)
	}

	handler(err, c)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

func TestErrorHandler_SessionExpiredForcesLogout(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, "sess-1", "tok", time.Hour); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	handler := NewHTTPErrorHandler(zerolog.Nop(), store, testCookie)
	rec := render(t, handler, domain.ErrSessionExpired, func(c echo.Context) {
		c.Set(middleware.SessionIDKey, "sess-1")
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "session expired, login required" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if _, err := store.Get(ctx, "sess-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("rejected session must be cleared, got %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != testCookie || cookies[0].MaxAge != -1 {
		t.Fatalf("expected expired session cookie, got %+v", cookies)
	}
}

func TestErrorHandler_InsufficientRole(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop(), session.NewMemoryStore(), testCookie)
	rec := render(t, handler, domain.ErrInsufficientRole, nil)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "insufficient role" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_LoginFailed(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop(), session.NewMemoryStore(), testCookie)
	rec := render(t, handler, domain.ErrLoginFailed, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestErrorHandler_UpstreamErrorKeepsServerMessage(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop(), session.NewMemoryStore(), testCookie)
	rec := render(t, handler, &domain.UpstreamError{Status: 409, Message: "category already exists"}, nil)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "category already exists" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UpstreamErrorWithoutMessage(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop(), session.NewMemoryStore(), testCookie)
	rec := render(t, handler, &domain.UpstreamError{Status: 500}, nil)

	if msg := decodeError(t, rec); msg != "backend request failed" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop(), session.NewMemoryStore(), testCookie)
	rec := render(t, handler, echo.NewHTTPError(http.StatusNotFound, "Not Found"), nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop(), session.NewMemoryStore(), testCookie)

	for _, err := range []error{domain.ErrMissingID, domain.ErrInvalidRole, domain.ErrConfirmRequired} {
		rec := render(t, handler, err, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", err, rec.Code)
		}
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop(), session.NewMemoryStore(), testCookie)
	rec := render(t, handler, errors.New("pq: connection reset"), nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}
