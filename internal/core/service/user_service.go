package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/core/ports"
)

// UserService drives the Users screen. Creation goes through the signup
// endpoint (the only creation path that documents the password rule), and
// role changes use the dedicated change-role endpoint.
type UserService struct {
	*listController[domain.User]
}

func NewUserService(upstream ports.UpstreamClient, log zerolog.Logger) *UserService {
	return &UserService{
		listController: newListController(upstream, listConfig[domain.User]{
			entity:   "user",
			listPath: "/api/User/all",
		}, log),
	}
}

type signupPayload struct {
	Email       string `json:"email"`
	UserName    string `json:"userName"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password"`
	UserRole    string `json:"userRole"`
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) error {
	if !domain.ValidRole(input.UserRole) {
		return domain.ErrInvalidRole
	}
	payload := signupPayload{
		Email:       input.Email,
		UserName:    input.UserName,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Password:    input.Password,
		UserRole:    input.UserRole,
	}
	return s.mutate(ctx, "create", func(ctx context.Context) error {
		_, err := s.upstream.Post(ctx, "/api/Auth/signup", payload)
		return err
	})
}

// Update sends the full row back, unchanged fields included, as the inline
// edit flow does.
func (s *UserService) Update(ctx context.Context, row domain.User) error {
	if row.ID == "" {
		return domain.ErrMissingID
	}
	if row.UserRoles == nil {
		row.UserRoles = []string{}
	}
	return s.mutate(ctx, "update", func(ctx context.Context) error {
		_, err := s.upstream.Put(ctx, "/api/User/update/"+url.PathEscape(row.ID), row)
		return err
	})
}

func (s *UserService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrMissingID
	}
	return s.mutate(ctx, "delete", func(ctx context.Context) error {
		return s.upstream.Delete(ctx, "/api/User/delete/"+url.PathEscape(id))
	})
}

func (s *UserService) ChangeRole(ctx context.Context, id, role string) error {
	if id == "" {
		return domain.ErrMissingID
	}
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}
	path := fmt.Sprintf("/api/User/change-role/%s?newUserRole=%s",
		url.PathEscape(id), url.QueryEscape(role))
	return s.mutate(ctx, "change_role", func(ctx context.Context) error {
		_, err := s.upstream.Post(ctx, path, nil)
		return err
	})
}
