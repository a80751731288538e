package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

func TestNewLifecycleEvent(t *testing.T) {
	res := &model.Reservation{
		ID:        7,
		FirstName: "Rick",
		LastName:  "Sanchez",
		People:    4,
		Status:    model.StatusSeated,
	}
	tbl := &model.Table{ID: 3, TableName: "Window 1"}

	ev := NewLifecycleEvent(res, tbl)
	assert.Equal(t, EventSeated, ev.Type)
	assert.Equal(t, uint64(7), ev.ReservationID)
	assert.Equal(t, "Rick Sanchez", ev.PartyName)
	assert.Equal(t, 4, ev.People)
	assert.Equal(t, uint64(3), ev.TableID)
	assert.Equal(t, "Window 1", ev.TableName)
	assert.NotEmpty(t, ev.OccurredAt)

	res.Status = model.StatusFinished
	assert.Equal(t, EventFinished, NewLifecycleEvent(res, nil).Type)
	res.Status = model.StatusCancelled
	ev = NewLifecycleEvent(res, nil)
	assert.Equal(t, EventCancelled, ev.Type)
	assert.Zero(t, ev.TableID)

	// booked is not a lifecycle event and must not produce a type.
	res.Status = model.StatusBooked
	assert.Empty(t, NewLifecycleEvent(res, nil).Type)
}
