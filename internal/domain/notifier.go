package domain

import "context"

// Event names emitted after committed state transitions.
const (
	EventReservationCreated = "reservation:created"
	EventReservationUpdated = "reservation:updated"
	EventReservationDeleted = "reservation:deleted"
	EventShowtimeCreated    = "showtime:created"
	EventShowtimeDeleted    = "showtime:deleted"
	EventSeatUpdated        = "seat:updated"
	EventHallCreated        = "hall:created"
	EventHallUpdated        = "hall:updated"
	EventHallDeleted        = "hall:deleted"
)

type Event struct {
	Name    string
	Payload any
}

// Notifier fans committed state-change events out to connected clients.
// Delivery is best-effort and strictly post-commit: implementations must
// never fail a booking operation, and callers must never notify before the
// transaction has durably committed.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}
