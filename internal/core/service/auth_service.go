package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/busybee/admin-gateway/internal/api/metrics"
	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/core/ports"
)

// AuthService exchanges admin credentials for a server-side session. The
// backend's bearer token is opaque to the gateway: it is stored as-is and
// attached to upstream calls until logout or expiry.
type AuthService struct {
	upstream ports.UpstreamClient
	sessions ports.SessionStore
	ttl      time.Duration
	log      zerolog.Logger
}

func NewAuthService(upstream ports.UpstreamClient, sessions ports.SessionStore, ttl time.Duration, log zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{upstream: upstream, sessions: sessions, ttl: ttl, log: log}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	raw, err := s.upstream.Post(ctx, "/api/Auth/login", loginPayload{Email: email, Password: password})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	token := decodeToken(raw)
	if token == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		s.log.Warn().Str("email", email).Msg("login rejected: no token in response")
		return "", domain.ErrLoginFailed
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Set(ctx, sessionID, token, s.ttl); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("email", email).Msg("login succeeded")
	return sessionID, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Clear(ctx, sessionID)
}

// decodeToken accepts the token as a JSON string or as a bare body. A falsy
// payload ("", null) yields "" and is treated as a failed login.
func decodeToken(raw json.RawMessage) string {
	var token string
	if err := json.Unmarshal(raw, &token); err == nil {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(string(raw))
}
