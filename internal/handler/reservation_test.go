package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-reservation/internal/queue"
)

// 2030-08-28 is a Wednesday, safely inside booking hours and far enough
// ahead that the policy's past check never trips.
const createBody = `{"data":{
	"first_name": "Rick",
	"last_name": "Sanchez",
	"mobile_number": "202-555-0164",
	"reservation_date": "2030-08-28",
	"reservation_time": "18:30",
	"people": 4
}}`

func createReservation(t *testing.T, env *testEnv) uint64 {
	t.Helper()
	rec := call(t, env.res.Create, http.MethodPost, "/reservations", createBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, ok := data(t, rec)["reservation_id"].(float64)
	require.True(t, ok)
	return uint64(id)
}

func idParam(id uint64) string { return fmt.Sprintf("%d", id) }

func TestCreateReservationRoundTrip(t *testing.T) {
	env := setupEnv(t)
	rec := call(t, env.res.Create, http.MethodPost, "/reservations", createBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	d := data(t, rec)
	assert.Equal(t, "booked", d["status"])
	assert.Equal(t, "2030-08-28", d["reservation_date"])
	assert.Equal(t, "18:30", d["reservation_time"])
	assert.Equal(t, float64(4), d["people"])
	assert.NotZero(t, d["reservation_id"])

	// Reading it back returns the stored values unchanged.
	id := uint64(d["reservation_id"].(float64))
	rec = call(t, env.res.Get, http.MethodGet, "/reservations/1", "", "reservation_id", idParam(id))
	require.Equal(t, http.StatusOK, rec.Code)
	d = data(t, rec)
	assert.Equal(t, "2030-08-28", d["reservation_date"])
	assert.Equal(t, "18:30", d["reservation_time"])
}

func TestCreateReservationErrors(t *testing.T) {
	env := setupEnv(t)

	rec := call(t, env.res.Create, http.MethodPost, "/reservations", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "data is required", decode(t, rec)["error"])

	rec = call(t, env.res.Create, http.MethodPost, "/reservations", `{"data":{"last_name":"x"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "first_name")

	// 2030-08-27 is a Tuesday, the weekly closed day.
	rec = call(t, env.res.Create, http.MethodPost, "/reservations", `{"data":{
		"first_name":"Rick","last_name":"Sanchez","mobile_number":"555-0164",
		"reservation_date":"2030-08-27","reservation_time":"18:30","people":4}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "closed")

	rec = call(t, env.res.Create, http.MethodPost, "/reservations", `{"data":{
		"first_name":"Rick","last_name":"Sanchez","mobile_number":"555-0164",
		"reservation_date":"2030-08-28","reservation_time":"22:00","people":4}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "hours")

	rec = call(t, env.res.Create, http.MethodPost, "/reservations", `{"data":{
		"first_name":"Rick","last_name":"Sanchez","mobile_number":"555-0164",
		"reservation_date":"2030-08-28","reservation_time":"18:30","people":4,
		"status":"seated"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "seated")
}

func TestGetReservationNotFound(t *testing.T) {
	env := setupEnv(t)

	rec := call(t, env.res.Get, http.MethodGet, "/reservations/99", "", "reservation_id", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "reservation cannot be found", decode(t, rec)["error"])

	rec = call(t, env.res.Get, http.MethodGet, "/reservations/zero", "", "reservation_id", "zero")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListReservationsByDate(t *testing.T) {
	env := setupEnv(t)
	createReservation(t, env)

	rec := call(t, env.res.List, http.MethodGet, "/reservations?date=2030-08-28", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)

	rec = call(t, env.res.List, http.MethodGet, "/reservations?date=2030-09-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dataList(t, rec))
}

func TestListReservationsByPhone(t *testing.T) {
	env := setupEnv(t)
	createReservation(t, env)

	rec := call(t, env.res.List, http.MethodGet, "/reservations?mobile_number=5550164", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)

	rec = call(t, env.res.List, http.MethodGet, "/reservations?mobile_number=9999", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dataList(t, rec))
}

func TestUpdateReservation(t *testing.T) {
	env := setupEnv(t)
	id := createReservation(t, env)

	rec := call(t, env.res.Update, http.MethodPut, "/reservations/1",
		`{"data":{"people":6}}`, "reservation_id", idParam(id))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	d := data(t, rec)
	assert.Equal(t, float64(6), d["people"])
	assert.Equal(t, "Rick", d["first_name"])

	rec = call(t, env.res.Update, http.MethodPut, "/reservations/1",
		`{"data":{}}`, "reservation_id", idParam(id))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, env.res.Update, http.MethodPut, "/reservations/99",
		`{"data":{"people":6}}`, "reservation_id", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateReservationStatus(t *testing.T) {
	env := setupEnv(t)
	id := createReservation(t, env)

	rec := call(t, env.res.UpdateStatus, http.MethodPut, "/reservations/1/status",
		`{"data":{"status":"cancelled"}}`, "reservation_id", idParam(id))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "cancelled", data(t, rec)["status"])

	// The transition was announced on the queue.
	require.Len(t, env.events, 1)
	assert.Equal(t, queue.EventCancelled, env.events[0].Type)
	assert.Equal(t, id, env.events[0].ReservationID)

	// Cancelling again is a conflict; nothing further is published.
	rec = call(t, env.res.UpdateStatus, http.MethodPut, "/reservations/1/status",
		`{"data":{"status":"cancelled"}}`, "reservation_id", idParam(id))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, env.events, 1)

	rec = call(t, env.res.UpdateStatus, http.MethodPut, "/reservations/1/status",
		`{"data":{"status":"waiting"}}`, "reservation_id", idParam(id))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "unknown status")

	rec = call(t, env.res.UpdateStatus, http.MethodPut, "/reservations/1/status",
		`{}`, "reservation_id", idParam(id))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusNoOpPublishesNothing(t *testing.T) {
	env := setupEnv(t)
	id := createReservation(t, env)

	// booked -> booked succeeds but changes nothing on the floor, so no
	// lifecycle event goes out.
	rec := call(t, env.res.UpdateStatus, http.MethodPut, "/reservations/1/status",
		`{"data":{"status":"booked"}}`, "reservation_id", idParam(id))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "booked", data(t, rec)["status"])
	assert.Empty(t, env.events)
}
