package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/core/ports"
)

// UserHandler exposes the Users screen, including the dedicated role-change
// action.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Email       string `json:"email" validate:"required"`
	UserName    string `json:"userName" validate:"required"`
	FullName    string `json:"fullName" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" validate:"required,min=3"`
	UserRole    string `json:"userRole" validate:"required,oneof=customer specialist admin"`
}

type updateUserRequest struct {
	UserName    string   `json:"userName" validate:"required"`
	Email       string   `json:"email" validate:"required"`
	FullName    string   `json:"fullName"`
	PhoneNumber string   `json:"phoneNumber"`
	UserRoles   []string `json:"userRoles"`
}

type userListResponse struct {
	Items []domain.User `json:"items"`
}

// List refreshes and returns the user list. The Users screen has no text
// filter.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	items, err := h.service.Refresh(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Items: items})
}

// Create registers a user through the signup endpoint.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Param        body  body  createUserRequest  true  "New user (password min 3 chars)"
// @Success      201
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:       req.Email,
		UserName:    req.UserName,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		UserRole:    req.UserRole,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Update saves an inline edit of a user row. The full record goes back
// upstream; roles are changed through ChangeRole, not here.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Param        id    path  string             true  "User id"
// @Param        body  body  updateUserRequest  true  "Edited row"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.service.Update(c.Request().Context(), domain.User{
		ID:          id,
		UserName:    req.UserName,
		Email:       req.Email,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		UserRoles:   req.UserRoles,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes a user after explicit confirmation.
//
// @Summary      Delete a user
// @Tags         users
// @Param        id       path   string  true  "User id"
// @Param        confirm  query  string  true  "Must be true"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := requireConfirm(c); err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeRole assigns a new role through the dedicated backend endpoint and
// refreshes the list.
//
// @Summary      Change a user's role
// @Tags         users
// @Param        id           path   string  true  "User id"
// @Param        newUserRole  query  string  true  "customer, specialist, or admin"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/users/{id}/role [post]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	role := c.QueryParam("newUserRole")
	if err := h.service.ChangeRole(c.Request().Context(), c.Param("id"), role); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
