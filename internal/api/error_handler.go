package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/busybee/admin-gateway/internal/api/middleware"
	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/core/ports"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Treats an upstream 401 as a forced logout: the session is cleared and
//     the cookie expired, so the next page load lands on the login screen.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, sessions ports.SessionStore, cookieName string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrSessionExpired) {
			forceLogout(c, log, sessions, cookieName)
			_ = c.JSON(http.StatusUnauthorized, errorResponse{Error: "session expired, login required"})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden, "insufficient role"
	case errors.Is(err, domain.ErrLoginFailed):
		return http.StatusUnauthorized, "login failed"
	case errors.Is(err, domain.ErrMissingID):
		return http.StatusBadRequest, "record id is required"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role"
	case errors.Is(err, domain.ErrConfirmRequired):
		return http.StatusBadRequest, "confirmation required"
	}

	// Upstream failures keep the server message but read as a gateway error.
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		msg := ue.Message
		if msg == "" {
			msg = "backend request failed"
		}
		return http.StatusBadGateway, msg
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// forceLogout destroys the current session after the backend rejected its
// token, closing the "expired but present" gap.
func forceLogout(c echo.Context, log zerolog.Logger, sessions ports.SessionStore, cookieName string) {
	sessionID, _ := c.Get(middleware.SessionIDKey).(string)
	if sessionID != "" {
		if err := sessions.Clear(c.Request().Context(), sessionID); err != nil {
			log.Warn().Err(err).Msg("failed to clear rejected session")
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
