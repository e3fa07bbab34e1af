package ports

import (
	"context"
	"time"
)

// SessionStore keeps the upstream bearer token for each active admin
// session. Get returns domain.ErrSessionNotFound for unknown or expired
// session ids.
type SessionStore interface {
	Set(ctx context.Context, sessionID, token string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Clear(ctx context.Context, sessionID string) error
}
