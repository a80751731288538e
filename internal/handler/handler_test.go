package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-reservation/internal/booking"
	"github.com/iliyamo/restaurant-reservation/internal/queue"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
)

const testSchema = `
CREATE TABLE reservations (
    reservation_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name       TEXT    NOT NULL,
    last_name        TEXT    NOT NULL,
    mobile_number    TEXT    NOT NULL,
    reservation_date TEXT    NOT NULL,
    reservation_time TEXT    NOT NULL,
    people           INTEGER NOT NULL,
    status           TEXT    NOT NULL DEFAULT 'booked',
    created_at       TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at       TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE tables (
    table_id       INTEGER PRIMARY KEY AUTOINCREMENT,
    table_name     TEXT    NOT NULL,
    capacity       INTEGER NOT NULL,
    reservation_id INTEGER,
    created_at     TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at     TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE users (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    email         TEXT NOT NULL UNIQUE,
    full_name     TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// testEnv wires real handlers over an in-memory database. Publish
// captures lifecycle events instead of talking to a broker.
type testEnv struct {
	res    *ReservationHandler
	tbl    *TableHandler
	events []queue.LifecycleEvent
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reservations := repository.NewReservationRepo(db)
	tables := repository.NewTableRepo(db)
	sched := booking.NewSchedule(time.UTC, time.Tuesday, "10:30", "21:30")
	flow := booking.NewWorkflow(db, reservations, tables, sched)

	env := &testEnv{
		res: NewReservationHandler(flow, reservations),
		tbl: NewTableHandler(flow, tables),
	}
	capture := func(_ context.Context, ev queue.LifecycleEvent) error {
		env.events = append(env.events, ev)
		return nil
	}
	env.res.Publish = capture
	env.tbl.Publish = capture
	return env
}

// call runs a handler against a synthetic request. params are path
// parameter name/value pairs.
func call(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.Equal(t, 0, len(params)%2, "params must come in pairs")
	var names, values []string
	for i := 0; i < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	require.NoError(t, h(c))
	return rec
}

// decode unmarshals a response body into a generic map.
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// data extracts the "data" object from an envelope response.
func data(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	d, ok := decode(t, rec)["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", rec.Body.String())
	return d
}

// dataList extracts the "data" array from an envelope response.
func dataList(t *testing.T, rec *httptest.ResponseRecorder) []any {
	t.Helper()
	d, ok := decode(t, rec)["data"].([]any)
	require.True(t, ok, "response has no data array: %s", rec.Body.String())
	return d
}
