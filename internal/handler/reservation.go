package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/booking"
	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/queue"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
)

// ReservationHandler serves the /reservations endpoints. Flow is the
// status state machine; the repository is used directly only for pure
// reads. Publish, when set, receives lifecycle events after a
// transition commits; failures to publish never fail the request.
type ReservationHandler struct {
	Flow         *booking.Workflow
	Reservations *repository.ReservationRepo
	Publish      func(ctx context.Context, ev queue.LifecycleEvent) error
}

// NewReservationHandler constructs a ReservationHandler. Flow and the
// repository must be non-nil; Publish may be nil.
func NewReservationHandler(flow *booking.Workflow, reservations *repository.ReservationRepo) *ReservationHandler {
	if flow == nil || reservations == nil {
		panic("nil dependency passed to NewReservationHandler")
	}
	return &ReservationHandler{Flow: flow, Reservations: reservations}
}

// List handles GET /reservations. With ?mobile_number= it searches by
// phone fragment across all dates; otherwise it lists the reservations
// for ?date= (default: today in the restaurant's zone) ordered by time.
func (h *ReservationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if frag := c.QueryParam("mobile_number"); frag != "" {
		found, err := h.Reservations.SearchByPhone(ctx, frag)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"data": found})
	}
	date := c.QueryParam("date")
	if date == "" {
		date = h.Flow.Schedule().Today(time.Now())
	}
	list, err := h.Reservations.ListByDate(ctx, date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": list})
}

// Create handles POST /reservations.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body struct {
		Data *booking.CreateReservationRequest `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Data == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "data is required"})
	}
	res, err := h.Flow.Create(c.Request().Context(), *body.Data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": res})
}

// Get handles GET /reservations/:reservation_id.
func (h *ReservationHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "reservation_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	res, err := h.Reservations.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": res})
}

// Update handles PUT /reservations/:reservation_id, the partial edit
// used to correct guest details. Status never changes here.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, ok := parseID(c, "reservation_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var body struct {
		Data *booking.EditReservationRequest `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Data == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "data is required"})
	}
	res, err := h.Flow.Edit(c.Request().Context(), id, *body.Data)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": res})
}

// UpdateStatus handles PUT /reservations/:reservation_id/status. The
// dashboard uses it to cancel; every move runs through the state
// machine, which frees an occupied table in the same transaction when
// the transition demands it.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	id, ok := parseID(c, "reservation_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var body struct {
		Data *struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Data == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "data is required"})
	}
	res, err := h.Flow.UpdateStatus(c.Request().Context(), id, body.Data.Status)
	if err != nil {
		return writeError(c, err)
	}
	// A booked result means the no-op transition; nothing happened on
	// the floor, so nothing goes on the queue.
	if h.Publish != nil && res.Status != model.StatusBooked {
		_ = h.Publish(c.Request().Context(), queue.NewLifecycleEvent(res, nil))
	}
	return c.JSON(http.StatusOK, echo.Map{"data": res})
}
