package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/busybee/admin-gateway/internal/api/metrics"
	"github.com/busybee/admin-gateway/internal/core/ports"
)

// listConfig parameterizes a listController for one entity type.
type listConfig[T any] struct {
	entity     string // log/metric label
	listPath   string
	searchText func(T) []string // fields matched by Search; nil disables filtering
}

// listController owns the fetch lifecycle and in-memory list snapshot for
// one entity type. The snapshot is a cached view of the backend, never
// authoritative: every confirmed mutation triggers an unconditional refresh,
// and a failed refresh leaves the previous snapshot in place (stale but
// visible). Overlapping refreshes resolve independently; the last one to
// complete wins.
type listController[T any] struct {
	upstream ports.UpstreamClient
	cfg      listConfig[T]
	log      zerolog.Logger

	mu    sync.RWMutex
	items []T
}

func newListController[T any](upstream ports.UpstreamClient, cfg listConfig[T], log zerolog.Logger) *listController[T] {
	return &listController[T]{
		upstream: upstream,
		cfg:      cfg,
		log:      log.With().Str("entity", cfg.entity).Logger(),
	}
}

// Refresh fetches the entity list and replaces the snapshot, returning the
// new one. On failure the previous snapshot is kept untouched.
func (l *listController[T]) Refresh(ctx context.Context) ([]T, error) {
	raw, err := l.upstream.Get(ctx, l.cfg.listPath)
	if err != nil {
		metrics.RefreshesTotal.WithLabelValues(l.cfg.entity, "error").Inc()
		l.log.Error().Err(err).Msg("list refresh failed")
		return nil, err
	}

	items, err := decodeList[T](raw)
	if err != nil {
		metrics.RefreshesTotal.WithLabelValues(l.cfg.entity, "error").Inc()
		l.log.Error().Err(err).Msg("list payload malformed")
		return nil, err
	}

	l.mu.Lock()
	l.items = items
	l.mu.Unlock()

	metrics.RefreshesTotal.WithLabelValues(l.cfg.entity, "ok").Inc()
	l.log.Debug().Int("count", len(items)).Msg("list refreshed")
	return l.Items(), nil
}

// Items returns a copy of the current snapshot.
func (l *listController[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Search filters the last fetched snapshot by case-insensitive substring
// match against the configured fields. It never hits the network. An empty
// query returns the full snapshot.
func (l *listController[T]) Search(query string) []T {
	items := l.Items()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || l.cfg.searchText == nil {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range l.cfg.searchText(item) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// mutate runs the given upstream call and refreshes the snapshot once it
// succeeds. A refresh failure after a confirmed mutation is logged, not
// surfaced: the mutation itself went through, and the stale snapshot stays
// visible until the next refresh.
func (l *listController[T]) mutate(ctx context.Context, action string, call func(context.Context) error) error {
	if err := call(ctx); err != nil {
		metrics.MutationsTotal.WithLabelValues(l.cfg.entity, action, "error").Inc()
		l.log.Error().Err(err).Str("action", action).Msg("mutation failed")
		return err
	}
	metrics.MutationsTotal.WithLabelValues(l.cfg.entity, action, "ok").Inc()

	if _, err := l.Refresh(ctx); err != nil {
		l.log.Warn().Err(err).Str("action", action).Msg("post-mutation refresh failed")
	}
	return nil
}

// decodeList treats a missing or null payload as an empty list rather than
// an error.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
