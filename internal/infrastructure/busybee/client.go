// Package busybee implements the HTTP client for the BusyBee marketplace
// backend. It is a deliberately thin wrapper: it attaches the session's
// bearer token, normalizes the response envelope, and maps failing statuses
// to domain errors. It does not retry, cache, or queue.
package busybee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/busybee/admin-gateway/internal/api/metrics"
	"github.com/busybee/admin-gateway/internal/infrastructure/session"
)

const defaultTimeout = 10 * time.Second

// Config locates the backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client issues verb-based calls against the backend's base URL.
type Client struct {
	base  string
	httpc *http.Client
	log   zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := cfg.BaseURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return &Client{
		base:  base,
		httpc: &http.Client{Timeout: timeout},
		log:   log,
	}
}

func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := session.TokenFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "transport_error").Inc()
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, "transport_error").Inc()
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
		c.log.Warn().
			Str("method", method).
			Str("path", req.URL.Path).
			Int("status", resp.StatusCode).
			Msg("upstream request failed")
		return nil, statusError(resp.StatusCode, raw)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(method, "ok").Inc()
	return unwrap(raw), nil
}
