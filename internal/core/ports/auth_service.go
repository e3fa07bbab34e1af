package ports

import "context"

// AuthService exchanges credentials for an admin session.
type AuthService interface {
	// Login authenticates against the backend and returns the id of the
	// freshly minted session. domain.ErrLoginFailed when the backend does
	// not hand back a token.
	Login(ctx context.Context, email, password string) (string, error)

	// Logout destroys the session. Unknown session ids are not an error.
	Logout(ctx context.Context, sessionID string) error
}
