package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLoginFailed means the backend did not return a token for the
	// submitted credentials.
	ErrLoginFailed = errors.New("login failed")

	// ErrSessionExpired is the mapping of an upstream 401: the stored token
	// is present but no longer accepted, so the session must be torn down.
	ErrSessionExpired = errors.New("session expired")

	// ErrInsufficientRole is the mapping of an upstream 403 on role-gated
	// mutations.
	ErrInsufficientRole = errors.New("insufficient role")

	ErrSessionNotFound = errors.New("session not found")
	ErrMissingID       = errors.New("missing record id")
	ErrInvalidRole     = errors.New("invalid role")
	ErrConfirmRequired = errors.New("confirmation required")
)

// UpstreamError carries a non-auth failure reported by the BusyBee backend,
// preserving the status code and the server-supplied message when present.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream status %d", e.Status)
}
