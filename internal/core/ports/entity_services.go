package ports

import (
	"context"

	"github.com/busybee/admin-gateway/internal/core/domain"
)

// The per-entity services below share one lifecycle, owned by the generic
// list controller: Refresh replaces the in-memory snapshot from the backend
// (keeping the previous snapshot on failure), every confirmed mutation is
// followed by an unconditional refresh, and Search filters the last snapshot
// without touching the network.

type CreateCategoryInput struct {
	Name string
}

type CategoryService interface {
	Refresh(ctx context.Context) ([]domain.Category, error)
	Items() []domain.Category
	Search(query string) []domain.Category
	Create(ctx context.Context, input CreateCategoryInput) error
	Update(ctx context.Context, row domain.Category) error
	Remove(ctx context.Context, id int64) error
}

type CreateUserInput struct {
	Email       string
	UserName    string
	FullName    string
	PhoneNumber string
	Password    string
	UserRole    string
}

type UserService interface {
	Refresh(ctx context.Context) ([]domain.User, error)
	Items() []domain.User
	Create(ctx context.Context, input CreateUserInput) error
	Update(ctx context.Context, row domain.User) error
	Remove(ctx context.Context, id string) error
	ChangeRole(ctx context.Context, id, role string) error
}

type CreateWorkInput struct {
	Name        string
	Description string
	CategoryID  int64
}

type WorkService interface {
	Refresh(ctx context.Context) ([]domain.Work, error)
	Items() []domain.Work
	Search(query string) []domain.Work
	Create(ctx context.Context, input CreateWorkInput) error
	Update(ctx context.Context, row domain.Work) error
	Remove(ctx context.Context, id int64) error
}
