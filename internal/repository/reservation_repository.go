package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// ReservationRepo provides CRUD and search operations for reservations.
// Date and time columns are stored and scanned as strings so the values
// a client sends come back byte for byte.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationCols = `reservation_id, first_name, last_name, mobile_number,
       reservation_date, reservation_time, people, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*model.Reservation, error) {
	var res model.Reservation
	err := row.Scan(
		&res.ID, &res.FirstName, &res.LastName, &res.MobileNumber,
		&res.ReservationDate, &res.ReservationTime, &res.People, &res.Status,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Create inserts a new reservation and reads the stored row back so the
// caller sees assigned ID, defaults and timestamps. Status must already
// be set by the workflow.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations
	           (first_name, last_name, mobile_number, reservation_date, reservation_time, people, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q,
		res.FirstName, res.LastName, res.MobileNumber,
		res.ReservationDate, res.ReservationTime, res.People, res.Status)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*res = *stored
	return nil
}

// GetByID returns a reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations WHERE reservation_id = ?`
	res, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	return res, err
}

// GetByIDTx is GetByID inside a caller-owned transaction.
func (r *ReservationRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations WHERE reservation_id = ?`
	res, err := scanReservation(tx.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	return res, err
}

// Update rewrites the guest fields of an existing reservation. Status
// is deliberately not part of this statement; status moves only through
// UpdateStatusTx so the state machine stays the single writer of it.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	const q = `UPDATE reservations
	           SET first_name = ?, last_name = ?, mobile_number = ?,
	               reservation_date = ?, reservation_time = ?, people = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE reservation_id = ?`
	result, err := r.db.ExecContext(ctx, q,
		res.FirstName, res.LastName, res.MobileNumber,
		res.ReservationDate, res.ReservationTime, res.People, res.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	stored, err := r.GetByID(ctx, res.ID)
	if err != nil {
		return err
	}
	*res = *stored
	return nil
}

// UpdateStatusTx writes a new status inside a transaction.
func (r *ReservationRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
	const q = `UPDATE reservations SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE reservation_id = ?`
	result, err := tx.ExecContext(ctx, q, status, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// List returns every reservation ordered by date then time.
func (r *ReservationRepo) List(ctx context.Context) ([]*model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations
	           ORDER BY reservation_date, reservation_time, reservation_id`
	return r.queryMany(ctx, q)
}

// ListByDate returns the reservations for one calendar date ordered by
// time of day, the order the dashboard shows them in.
func (r *ReservationRepo) ListByDate(ctx context.Context, date string) ([]*model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations
	           WHERE reservation_date = ?
	           ORDER BY reservation_time, reservation_id`
	return r.queryMany(ctx, q, date)
}

// SearchByPhone returns reservations whose mobile number contains the
// fragment, comparing digits only so punctuation never affects a match.
// An empty fragment matches nothing rather than everything. The digit
// comparison runs here instead of in SQL so the same statement works on
// every backend the repo is tested against.
func (r *ReservationRepo) SearchByPhone(ctx context.Context, fragment string) ([]*model.Reservation, error) {
	want := digitsOnly(fragment)
	if want == "" {
		return []*model.Reservation{}, nil
	}
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Reservation, 0)
	for _, res := range all {
		if strings.Contains(digitsOnly(res.MobileNumber), want) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *ReservationRepo) queryMany(ctx context.Context, q string, args ...any) ([]*model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
