package busybee

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/busybee/admin-gateway/internal/core/domain"
)

// unwrap normalizes the two envelope shapes the backend emits. Both
// {"data": X} and a bare X yield X, so downstream code never branches on
// shape. An empty body yields nil, which consumers treat as an empty list.
func unwrap(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		// A present "data" key wins even when it is null: {"data":null}
		// means "no payload", which consumers read as an empty list.
		if err := json.Unmarshal(trimmed, &env); err == nil && env.Data != nil {
			return bytes.TrimSpace(env.Data)
		}
	}
	return trimmed
}

// statusError maps a failing upstream status to a typed error. 401 means the
// stored token is no longer accepted; 403 means the authenticated user lacks
// the role the mutation requires. Everything else keeps its status and the
// server-supplied message, when one is present in either observed shape.
func statusError(status int, raw []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrSessionExpired
	case http.StatusForbidden:
		return domain.ErrInsufficientRole
	}
	return &domain.UpstreamError{Status: status, Message: serverMessage(raw)}
}

func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Status  struct {
			Message string `json:"message"`
		} `json:"status"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Status.Message != "" {
		return body.Status.Message
	}
	return body.Message
}
