// Package queue defines the lifecycle events exchanged over the message
// broker and the background consumer that records them.
package queue

import (
	"time"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// Event types published on the reservation.lifecycle queue.
const (
	EventSeated    = "reservation.seated"
	EventFinished  = "reservation.finished"
	EventCancelled = "reservation.cancelled"
)

// LifecycleEvent is published whenever a reservation changes state in a
// way the floor cares about. It carries enough for downstream consumers
// to log or notify without querying the primary database.
type LifecycleEvent struct {
	Type          string `json:"type"`
	ReservationID uint64 `json:"reservation_id"`
	PartyName     string `json:"party_name,omitempty"`
	People        int    `json:"people,omitempty"`
	TableID       uint64 `json:"table_id,omitempty"`
	TableName     string `json:"table_name,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}

// NewLifecycleEvent derives an event from a reservation's new state and
// the table involved, if any. Only seated, finished and cancelled are
// lifecycle events; any other status yields an empty Type, which
// callers must not publish.
func NewLifecycleEvent(res *model.Reservation, t *model.Table) LifecycleEvent {
	ev := LifecycleEvent{
		ReservationID: res.ID,
		PartyName:     res.FirstName + " " + res.LastName,
		People:        res.People,
		OccurredAt:    Now(),
	}
	switch res.Status {
	case model.StatusSeated:
		ev.Type = EventSeated
	case model.StatusFinished:
		ev.Type = EventFinished
	case model.StatusCancelled:
		ev.Type = EventCancelled
	}
	if t != nil {
		ev.TableID = t.ID
		ev.TableName = t.TableName
	}
	return ev
}

// Now formats the current instant the way event timestamps are stored.
func Now() string { return time.Now().UTC().Format(time.RFC3339) }
