package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/core/ports"
)

// CategoryHandler exposes the Categories screen.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type categoryListResponse struct {
	Items []domain.Category `json:"items"`
}

// List returns the category list. With ?q= it filters the cached snapshot
// without hitting the backend; without it the snapshot is refreshed first.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        q  query     string  false  "Substring filter over the cached snapshot"
// @Success      200  {object}  categoryListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	if hasQuery(c) {
		return c.JSON(http.StatusOK, categoryListResponse{Items: h.service.Search(c.QueryParam("q"))})
	}

	items, err := h.service.Refresh(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryListResponse{Items: items})
}

// Create adds a category from the dialog form.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Param        body  body  createCategoryRequest  true  "New category"
// @Success      201
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{Name: req.Name}); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Update saves an inline edit, sending the full row back.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Param        id    path  int                    true  "Category id"
// @Param        body  body  updateCategoryRequest  true  "Edited row"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Router       /v1/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), domain.Category{ID: id, Name: req.Name}); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes a category after explicit confirmation.
//
// @Summary      Delete a category
// @Tags         categories
// @Param        id       path   int     true  "Category id"
// @Param        confirm  query  string  true  "Must be true"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := requireConfirm(c); err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
