package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NavHandler serves the shell's static section menu. No state beyond the
// route table itself.
type NavHandler struct{}

func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

type navSection struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

type navResponse struct {
	Sections []navSection `json:"sections"`
	Logout   string       `json:"logout"`
}

// Sections lists the entity screens plus the logout action.
//
// @Summary      Navigation shell sections
// @Tags         nav
// @Produce      json
// @Success      200  {object}  navResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/nav [get]
func (h *NavHandler) Sections(c echo.Context) error {
	return c.JSON(http.StatusOK, navResponse{
		Sections: []navSection{
			{Key: "users", Title: "Users", Path: "/v1/users"},
			{Key: "categories", Title: "Categories", Path: "/v1/categories"},
			{Key: "works", Title: "Works", Path: "/v1/works"},
		},
		Logout: "/v1/auth/logout",
	})
}
