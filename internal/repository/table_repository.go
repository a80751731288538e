package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// TableRepo provides persistence for dining tables, including the
// occupancy link to reservations. Occupancy writes come in Tx variants
// because the state machine always pairs them with a reservation status
// write in the same transaction.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo returns a TableRepo bound to the given database.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions.
func (r *TableRepo) DB() *sql.DB { return r.db }

const tableCols = `table_id, table_name, capacity, reservation_id, created_at, updated_at`

func scanTable(row rowScanner) (*model.Table, error) {
	var t model.Table
	var resID sql.NullInt64
	err := row.Scan(&t.ID, &t.TableName, &t.Capacity, &resID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if resID.Valid {
		id := uint64(resID.Int64)
		t.ReservationID = &id
	}
	return &t, nil
}

// Create inserts a new table and reads the stored row back.
func (r *TableRepo) Create(ctx context.Context, t *model.Table) error {
	const q = `INSERT INTO tables (table_name, capacity) VALUES (?, ?)`
	result, err := r.db.ExecContext(ctx, q, t.TableName, t.Capacity)
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
	*t = *stored
	return nil
}

// GetByID returns a table or ErrTableNotFound.
func (r *TableRepo) GetByID(ctx context.Context, id uint64) (*model.Table, error) {
	const q = `SELECT ` + tableCols + ` FROM tables WHERE table_id = ?`
	t, err := scanTable(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	return t, err
}

// GetByIDTx is GetByID inside a caller-owned transaction.
func (r *TableRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Table, error) {
	const q = `SELECT ` + tableCols + ` FROM tables WHERE table_id = ?`
	t, err := scanTable(tx.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	return t, err
}

// FindByReservationTx returns the table currently occupied by the given
// reservation, or ErrTableNotFound when the reservation is not seated.
func (r *TableRepo) FindByReservationTx(ctx context.Context, tx *sql.Tx, reservationID uint64) (*model.Table, error) {
	const q = `SELECT ` + tableCols + ` FROM tables WHERE reservation_id = ?`
	t, err := scanTable(tx.QueryRowContext(ctx, q, reservationID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	return t, err
}

// List returns every table ordered by name.
func (r *TableRepo) List(ctx context.Context) ([]*model.Table, error) {
	const q = `SELECT ` + tableCols + ` FROM tables ORDER BY table_name, table_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Table, 0)
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites a table's name and capacity. The occupancy link is
// untouched; it only moves through AssignTx and FreeTx.
func (r *TableRepo) Update(ctx context.Context, t *model.Table) error {
	const q = `UPDATE tables SET table_name = ?, capacity = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE table_id = ?`
	result, err := r.db.ExecContext(ctx, q, t.TableName, t.Capacity, t.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrTableNotFound
	}
	stored, err := r.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	*t = *stored
	return nil
}

// AssignTx points the table at a reservation inside a transaction.
func (r *TableRepo) AssignTx(ctx context.Context, tx *sql.Tx, tableID, reservationID uint64) error {
	const q = `UPDATE tables SET reservation_id = ?, updated_at = CURRENT_TIMESTAMP WHERE table_id = ?`
	result, err := tx.ExecContext(ctx, q, reservationID, tableID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrTableNotFound
	}
	return nil
}

// FreeTx clears the occupancy link inside a transaction. Freeing an
// already free table is a no-op, not an error.
func (r *TableRepo) FreeTx(ctx context.Context, tx *sql.Tx, tableID uint64) error {
	const q = `UPDATE tables SET reservation_id = NULL, updated_at = CURRENT_TIMESTAMP WHERE table_id = ?`
	result, err := tx.ExecContext(ctx, q, tableID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrTableNotFound
	}
	return nil
}

// Free clears the occupancy link outside any transaction. It exists for
// maintenance paths that only touch the table.
func (r *TableRepo) Free(ctx context.Context, tableID uint64) error {
	const q = `UPDATE tables SET reservation_id = NULL, updated_at = CURRENT_TIMESTAMP WHERE table_id = ?`
	result, err := r.db.ExecContext(ctx, q, tableID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrTableNotFound
	}
	return nil
}
