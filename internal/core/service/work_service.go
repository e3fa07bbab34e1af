package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/core/ports"
)

// WorkService drives the Works screen. Listings always carry an explicit
// category association.
type WorkService struct {
	*listController[domain.Work]
}

func NewWorkService(upstream ports.UpstreamClient, log zerolog.Logger) *WorkService {
	return &WorkService{
		listController: newListController(upstream, listConfig[domain.Work]{
			entity:   "work",
			listPath: "/api/Work/all",
			searchText: func(w domain.Work) []string {
				return []string{w.Name, w.Description}
			},
		}, log),
	}
}

func (s *WorkService) Create(ctx context.Context, input ports.CreateWorkInput) error {
	// The backend contract is ambiguous about where the category id lives,
	// so both observed channels are sent: the query parameter and the
	// embedded workCategory reference.
	payload := domain.Work{
		ID:           0,
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		WorkCategory: domain.WorkCategory{ID: input.CategoryID},
	}
	return s.mutate(ctx, "create", func(ctx context.Context) error {
		_, err := s.upstream.Post(ctx, fmt.Sprintf("/api/Work?categoryId=%d", input.CategoryID), payload)
		return err
	})
}

// Update sends the full row back, unchanged fields included, as the inline
// edit flow does.
func (s *WorkService) Update(ctx context.Context, row domain.Work) error {
	if row.ID == 0 {
		return domain.ErrMissingID
	}
	return s.mutate(ctx, "update", func(ctx context.Context) error {
		_, err := s.upstream.Put(ctx, fmt.Sprintf("/api/Work/update/%d", row.ID), row)
		return err
	})
}

func (s *WorkService) Remove(ctx context.Context, id int64) error {
	if id == 0 {
		return domain.ErrMissingID
	}
	return s.mutate(ctx, "delete", func(ctx context.Context) error {
		return s.upstream.Delete(ctx, fmt.Sprintf("/api/Work/delete/%d", id))
	})
}
