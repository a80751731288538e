package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-reservation/internal/model"
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

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// One connection keeps every statement on the same in-memory database.
	db.SetMaxOpenConns(1)
	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedReservation(t *testing.T, r *ReservationRepo, first, phone, date, tod string) *model.Reservation {
	t.Helper()
	res := &model.Reservation{
		FirstName:       first,
		LastName:        "Guest",
		MobileNumber:    phone,
		ReservationDate: date,
		ReservationTime: tod,
		People:          2,
		Status:          model.StatusBooked,
	}
	require.NoError(t, r.Create(context.Background(), res))
	return res
}
