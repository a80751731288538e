package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/booking"
	"github.com/iliyamo/restaurant-reservation/internal/queue"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
)

// TableHandler serves the /tables endpoints, including the two
// table-centric lifecycle operations: seating a reservation (PUT
// /tables/:table_id/seat) and finishing it (DELETE of the same path).
type TableHandler struct {
	Flow    *booking.Workflow
	Tables  *repository.TableRepo
	Publish func(ctx context.Context, ev queue.LifecycleEvent) error
}

// NewTableHandler constructs a TableHandler. Flow and the repository
// must be non-nil; Publish may be nil.
func NewTableHandler(flow *booking.Workflow, tables *repository.TableRepo) *TableHandler {
	if flow == nil || tables == nil {
		panic("nil dependency passed to NewTableHandler")
	}
	return &TableHandler{Flow: flow, Tables: tables}
}

// List handles GET /tables, ordered by table name.
func (h *TableHandler) List(c echo.Context) error {
	list, err := h.Tables.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": list})
}

// Create handles POST /tables.
func (h *TableHandler) Create(c echo.Context) error {
	var body struct {
		Data *booking.CreateTableRequest `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Data == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "data is required"})
	}
	t, err := h.Flow.CreateTable(c.Request().Context(), *body.Data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": t})
}

// Get handles GET /tables/:table_id.
func (h *TableHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "table_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
	}
	t, err := h.Tables.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": t})
}

// Seat handles PUT /tables/:table_id/seat. The body names the booked
// reservation to seat; the state machine checks capacity and occupancy
// and applies the paired writes atomically.
func (h *TableHandler) Seat(c echo.Context) error {
	id, ok := parseID(c, "table_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
	}
	var body struct {
		Data *struct {
			ReservationID uint64 `json:"reservation_id"`
		} `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Data == nil || body.Data.ReservationID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "reservation_id is required"})
	}
	t, err := h.Flow.Seat(c.Request().Context(), id, body.Data.ReservationID)
	if err != nil {
		return writeError(c, err)
	}
	if h.Publish != nil {
		_ = h.Publish(c.Request().Context(), queue.LifecycleEvent{
			Type:          queue.EventSeated,
			ReservationID: body.Data.ReservationID,
			TableID:       t.ID,
			TableName:     t.TableName,
			OccurredAt:    queue.Now(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": t})
}

// Finish handles DELETE /tables/:table_id/seat. It frees the table and
// marks the occupying reservation finished in one transaction.
func (h *TableHandler) Finish(c echo.Context) error {
	id, ok := parseID(c, "table_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
	}
	t, res, err := h.Flow.Finish(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if h.Publish != nil {
		_ = h.Publish(c.Request().Context(), queue.NewLifecycleEvent(res, t))
	}
	return c.JSON(http.StatusOK, echo.Map{"data": t})
}
