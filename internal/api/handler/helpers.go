package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/busybee/admin-gateway/internal/core/domain"
)

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// requireConfirm gates destructive calls behind an explicit confirmation.
// Without confirm=true nothing is sent upstream and the list is untouched —
// the server-side equivalent of cancelling the confirm dialog.
func requireConfirm(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return domain.ErrConfirmRequired
	}
	return nil
}

// hasQuery reports whether the request carries a search query, so an empty
// q= still means "filter the snapshot" rather than "refresh".
func hasQuery(c echo.Context) bool {
	return c.QueryParams().Has("q")
}
