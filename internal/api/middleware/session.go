package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/core/ports"
	"github.com/busybee/admin-gateway/internal/infrastructure/session"
)

// SessionIDKey is the echo context key under which Guard exposes the
// admitted session id.
const SessionIDKey = "session_id"

// Guard admits requests that present a known session cookie and injects the
// session's bearer token into the request context for the upstream client.
// The check is presence-only: the token itself is not validated here, so an
// expired-but-present token only fails on the next backend call.
func Guard(store ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}

			token, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "login required")
				}
				return err
			}

			c.Set(SessionIDKey, cookie.Value)
			req := c.Request()
			c.SetRequest(req.WithContext(session.WithToken(req.Context(), token)))

			return next(c)
		}
	}
}
