package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/core/ports"
)

// CategoryService drives the Categories screen: list with text filtering,
// create from the dialog, inline rename, confirm-then-delete.
type CategoryService struct {
	*listController[domain.Category]
}

func NewCategoryService(upstream ports.UpstreamClient, log zerolog.Logger) *CategoryService {
	return &CategoryService{
		listController: newListController(upstream, listConfig[domain.Category]{
			entity:   "category",
			listPath: "/api/Category/all",
			searchText: func(c domain.Category) []string {
				return []string{c.Name}
			},
		}, log),
	}
}

func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) error {
	payload := map[string]string{"name": strings.TrimSpace(input.Name)}
	return s.mutate(ctx, "create", func(ctx context.Context) error {
		_, err := s.upstream.Post(ctx, "/api/Category/add", payload)
		return err
	})
}

func (s *CategoryService) Update(ctx context.Context, row domain.Category) error {
	if row.ID == 0 {
		return domain.ErrMissingID
	}
	return s.mutate(ctx, "update", func(ctx context.Context) error {
		_, err := s.upstream.Put(ctx, fmt.Sprintf("/api/Category/update/%d", row.ID), row)
		return err
	})
}

func (s *CategoryService) Remove(ctx context.Context, id int64) error {
	if id == 0 {
		return domain.ErrMissingID
	}
	return s.mutate(ctx, "delete", func(ctx context.Context) error {
		return s.upstream.Delete(ctx, fmt.Sprintf("/api/Category/%d", id))
	})
}
