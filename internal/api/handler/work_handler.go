package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/busybee/admin-gateway/internal/core/domain"
	"github.com/busybee/admin-gateway/internal/core/ports"
)

// WorkHandler exposes the Works screen.
type WorkHandler struct {
	service ports.WorkService
}

func NewWorkHandler(service ports.WorkService) *WorkHandler {
	return &WorkHandler{service: service}
}

type createWorkRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	CategoryID  int64  `json:"categoryId" validate:"required,gt=0"`
}

type updateWorkRequest struct {
	Name         string              `json:"name" validate:"required"`
	Description  string              `json:"description"`
	WorkCategory domain.WorkCategory `json:"workCategory"`
}

type workListResponse struct {
	Items []domain.Work `json:"items"`
}

// List returns the work listings. With ?q= it filters the cached snapshot by
// name and description without hitting the backend.
//
// @Summary      List works
// @Tags         works
// @Produce      json
// @Param        q  query     string  false  "Substring filter over the cached snapshot"
// @Success      200  {object}  workListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/works [get]
func (h *WorkHandler) List(c echo.Context) error {
	if hasQuery(c) {
		return c.JSON(http.StatusOK, workListResponse{Items: h.service.Search(c.QueryParam("q"))})
	}

	items, err := h.service.Refresh(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workListResponse{Items: items})
}

// Create adds a work listing with its category association.
//
// @Summary      Create a work
// @Tags         works
// @Accept       json
// @Param        body  body  createWorkRequest  true  "New work"
// @Success      201
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/works [post]
func (h *WorkHandler) Create(c echo.Context) error {
	var req createWorkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.service.Create(c.Request().Context(), ports.CreateWorkInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Update saves an inline edit. The full row goes back upstream, unchanged
// fields included.
//
// @Summary      Update a work
// @Tags         works
// @Accept       json
// @Param        id    path  int                true  "Work id"
// @Param        body  body  updateWorkRequest  true  "Edited row"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Router       /v1/works/{id} [put]
func (h *WorkHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateWorkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), domain.Work{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		WorkCategory: req.WorkCategory,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes a work after explicit confirmation.
//
// @Summary      Delete a work
// @Tags         works
// @Param        id       path   int     true  "Work id"
// @Param        confirm  query  string  true  "Must be true"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /v1/works/{id} [delete]
func (h *WorkHandler) Delete(c echo.Context) error {
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
