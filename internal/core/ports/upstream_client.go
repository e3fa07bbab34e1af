package ports

import (
	"context"
	"encoding/json"
)

// UpstreamClient is the thin HTTP wrapper over the BusyBee REST backend.
// Implementations attach the caller's bearer token from the request context
// and normalize the response envelope, so consumers always receive the bare
// payload. No retries, no caching, no queueing.
type UpstreamClient interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) error
}
