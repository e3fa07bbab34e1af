package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/busybee/admin-gateway/internal/core/ports"
)

// AuthHandler owns the login and logout endpoints. It alone touches the
// session cookie; every other handler sits behind the session guard.
type AuthHandler struct {
	authService ports.AuthService
	cookieName  string
	cookieTTL   time.Duration
}

func NewAuthHandler(authService ports.AuthService, cookieName string, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieName: cookieName, cookieTTL: cookieTTL}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Status   string `json:"status"`
	Redirect string `json:"redirect"`
}

// Login authenticates against the BusyBee backend and mints a session.
//
// @Summary      Log in to the admin panel
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sessionID, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// The client performs a full navigation to the shell root, so the shell
	// remounts with the new session already present for the guard check.
	return c.JSON(http.StatusOK, loginResponse{Status: "ok", Redirect: "/"})
}

// Logout destroys the session and expires the cookie.
//
// @Summary      Log out
// @Tags         auth
// @Success      204
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}
