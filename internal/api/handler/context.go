package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the numeric :id route parameter. A non-numeric or
// non-positive value does not satisfy the route's parameter pattern, so it
// is treated as no-match rather than a bad request.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Not Found")
	}
	return id, nil
}
