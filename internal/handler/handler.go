// Package handler contains the HTTP layer. Handlers bind the {"data":
// ...} envelope the browser client sends, hand plain structs to the
// booking core, and translate typed failures into status codes. No
// business rule lives here.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/booking"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
)

// writeError maps a core failure to a response. Validation, policy and
// conflict errors are all client mistakes (400); not-found is 404;
// anything unclassified is an infrastructure failure (500).
func writeError(c echo.Context, err error) error {
	var be *booking.Error
	if errors.As(err, &be) {
		code := http.StatusBadRequest
		if be.Kind == booking.KindNotFound {
			code = http.StatusNotFound
		}
		return c.JSON(code, echo.Map{"error": be.Message})
	}
	switch {
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation cannot be found"})
	case errors.Is(err, repository.ErrTableNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "table cannot be found"})
	}
	c.Logger().Errorf("internal error: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}

// parseID reads a numeric path parameter; zero is as invalid as garbage.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
