package booking

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
)

// Workflow is the status state machine. It owns every reservation
// lifecycle transition and keeps the reservation row and the table
// occupancy link consistent: whenever a transition touches both, the
// two writes run in one transaction and either both land or neither
// does.
//
// No row lock is held across the check-then-write window, so two
// simultaneous seat requests for the same table can race; the
// transaction only guarantees the pair of writes is atomic.
type Workflow struct {
	db           *sql.DB
	reservations *repository.ReservationRepo
	tables       *repository.TableRepo
	sched        Schedule
	now          func() time.Time
}

// NewWorkflow wires the state machine to its stores and booking policy.
func NewWorkflow(db *sql.DB, reservations *repository.ReservationRepo, tables *repository.TableRepo, sched Schedule) *Workflow {
	if db == nil || reservations == nil || tables == nil {
		panic("nil dependency passed to NewWorkflow")
	}
	return &Workflow{
		db:           db,
		reservations: reservations,
		tables:       tables,
		sched:        sched,
		now:          time.Now,
	}
}

// Schedule returns the booking policy the workflow enforces.
func (w *Workflow) Schedule() Schedule { return w.sched }

// Create validates a new booking, checks it against the schedule and
// stores it. The stored status is always booked no matter what the
// payload carried; ValidateCreate has already rejected attempts to
// pre-seat or pre-finish.
func (w *Workflow) Create(ctx context.Context, req CreateReservationRequest) (*model.Reservation, error) {
	if err := ValidateCreate(&req); err != nil {
		return nil, err
	}
	if err := w.sched.Check(req.ReservationDate, req.ReservationTime, w.now()); err != nil {
		return nil, err
	}
	res := &model.Reservation{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		MobileNumber:    req.MobileNumber,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		People:          req.People,
		Status:          model.StatusBooked,
	}
	if err := w.reservations.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Edit applies a partial update to guest fields. Finished and cancelled
// reservations are immutable. The schedule is re-checked only when the
// edit moves the booking to a different date or time.
func (w *Workflow) Edit(ctx context.Context, id uint64, req EditReservationRequest) (*model.Reservation, error) {
	if err := ValidateEdit(&req); err != nil {
		return nil, err
	}
	res, err := w.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, w.storeErr(err)
	}
	switch res.Status {
	case model.StatusFinished:
		return nil, conflict("finished reservations are immutable")
	case model.StatusCancelled:
		return nil, conflict("cancelled reservations cannot be edited")
	}
	slotChanged := false
	if req.FirstName != nil {
		res.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		res.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.MobileNumber != nil {
		res.MobileNumber = strings.TrimSpace(*req.MobileNumber)
	}
	if req.ReservationDate != nil {
		if d := strings.TrimSpace(*req.ReservationDate); d != res.ReservationDate {
			res.ReservationDate = d
			slotChanged = true
		}
	}
	if req.ReservationTime != nil {
		if t := strings.TrimSpace(*req.ReservationTime); t != res.ReservationTime {
			res.ReservationTime = t
			slotChanged = true
		}
	}
	if req.People != nil {
		res.People = *req.People
	}
	if slotChanged {
		if err := w.sched.Check(res.ReservationDate, res.ReservationTime, w.now()); err != nil {
			return nil, err
		}
	}
	if err := w.reservations.Update(ctx, res); err != nil {
		return nil, w.storeErr(err)
	}
	return res, nil
}

// UpdateStatus drives the state machine for transitions that arrive as
// a bare status value. Legal moves:
//
//	booked -> cancelled
//	seated -> cancelled   (frees the occupied table)
//	seated -> finished    (frees the occupied table)
//	booked -> booked      (no-op)
//
// Seating always requires a table and must come through Seat; finished
// reservations reject everything.
func (w *Workflow) UpdateStatus(ctx context.Context, id uint64, status string) (*model.Reservation, error) {
	if !model.KnownStatus(status) {
		return nil, invalid("unknown status: " + status)
	}
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := w.reservations.GetByIDTx(ctx, tx, id)
	if err != nil {
		return nil, w.storeErr(err)
	}
	if res.Status == model.StatusFinished {
		return nil, conflict("finished reservations are immutable")
	}

	switch status {
	case model.StatusBooked:
		if res.Status != model.StatusBooked {
			return nil, conflict("a " + res.Status + " reservation cannot move back to booked")
		}
		// Nothing to write; the deferred rollback closes the read-only tx.
		return res, nil
	case model.StatusSeated:
		return nil, conflict("seating a reservation requires a table assignment")
	case model.StatusFinished:
		if res.Status != model.StatusSeated {
			return nil, conflict("only seated reservations can be finished")
		}
	case model.StatusCancelled:
		if res.Status == model.StatusCancelled {
			return nil, conflict("reservation is already cancelled")
		}
	}

	// finished and cancelled-while-seated both release the table in the
	// same transaction as the status write.
	if res.Status == model.StatusSeated {
		table, err := w.tables.FindByReservationTx(ctx, tx, res.ID)
		if err != nil && !errors.Is(err, repository.ErrTableNotFound) {
			return nil, err
		}
		if table != nil {
			if err := w.tables.FreeTx(ctx, tx, table.ID); err != nil {
				return nil, err
			}
		}
	}
	if err := w.reservations.UpdateStatusTx(ctx, tx, res.ID, status); err != nil {
		return nil, w.storeErr(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	res.Status = status
	return res, nil
}

// Cancel withdraws a reservation from booked or seated. It is
// UpdateStatus with a fixed target and shares its rules: cancelling an
// already cancelled reservation is a conflict, not a silent no-op.
func (w *Workflow) Cancel(ctx context.Context, id uint64) (*model.Reservation, error) {
	return w.UpdateStatus(ctx, id, model.StatusCancelled)
}

// Seat moves a booked reservation to seated at the given table. The
// table must exist, be free, and hold the whole party. The status write
// and the occupancy write share one transaction; on any precondition
// failure neither row changes.
func (w *Workflow) Seat(ctx context.Context, tableID, reservationID uint64) (*model.Table, error) {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	table, err := w.tables.GetByIDTx(ctx, tx, tableID)
	if err != nil {
		return nil, w.storeErr(err)
	}
	res, err := w.reservations.GetByIDTx(ctx, tx, reservationID)
	if err != nil {
		return nil, w.storeErr(err)
	}
	if res.Status == model.StatusFinished {
		return nil, conflict("finished reservations are immutable")
	}
	if res.Status != model.StatusBooked {
		return nil, conflict("only booked reservations can be seated")
	}
	if table.Occupied() {
		return nil, conflict("table " + table.TableName + " is occupied")
	}
	if table.Capacity < res.People {
		return nil, conflict("table " + table.TableName + " cannot seat a party of that size")
	}
	if err := w.tables.AssignTx(ctx, tx, table.ID, res.ID); err != nil {
		return nil, err
	}
	if err := w.reservations.UpdateStatusTx(ctx, tx, res.ID, model.StatusSeated); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	table.ReservationID = &res.ID
	return table, nil
}

// Finish frees a table and marks its occupying reservation finished,
// both in one transaction. Finishing a free table is a conflict. It
// returns the freed table and the finished reservation.
func (w *Workflow) Finish(ctx context.Context, tableID uint64) (*model.Table, *model.Reservation, error) {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	table, err := w.tables.GetByIDTx(ctx, tx, tableID)
	if err != nil {
		return nil, nil, w.storeErr(err)
	}
	if !table.Occupied() {
		return nil, nil, conflict("table " + table.TableName + " is not occupied")
	}
	res, err := w.reservations.GetByIDTx(ctx, tx, *table.ReservationID)
	if err != nil {
		return nil, nil, w.storeErr(err)
	}
	if err := w.tables.FreeTx(ctx, tx, table.ID); err != nil {
		return nil, nil, err
	}
	if err := w.reservations.UpdateStatusTx(ctx, tx, res.ID, model.StatusFinished); err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	committed = true
	table.ReservationID = nil
	res.Status = model.StatusFinished
	return table, res, nil
}

// CreateTable validates and stores a new dining table.
func (w *Workflow) CreateTable(ctx context.Context, req CreateTableRequest) (*model.Table, error) {
	if err := ValidateTable(&req); err != nil {
		return nil, err
	}
	t := &model.Table{TableName: req.TableName, Capacity: req.Capacity}
	if err := w.tables.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// storeErr converts repository sentinels into typed not-found errors
// and passes infrastructure errors through unclassified.
func (w *Workflow) storeErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrReservationNotFound):
		return notFound("reservation cannot be found")
	case errors.Is(err, repository.ErrTableNotFound):
		return notFound("table cannot be found")
	default:
		return err
	}
}
