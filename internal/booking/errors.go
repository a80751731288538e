// Package booking contains the reservation core: payload validation,
// the booking-hours policy, and the status state machine that keeps a
// reservation and the table it occupies consistent with each other.
// Every function in this package reports failures as *Error values so
// the handler layer can map them to HTTP status codes; anything else
// that escapes is an infrastructure failure (database connectivity and
// the like) and is not classified here.
package booking

import "errors"

// Kind labels the failure classes the core can produce.
type Kind int

const (
	// KindValidation marks malformed or missing required input.
	KindValidation Kind = iota + 1
	// KindPolicy marks well-formed input that violates a business rule
	// (closed day, outside booking hours, past date, bad status value).
	KindPolicy
	// KindNotFound marks a reference to a reservation or table that
	// does not exist.
	KindNotFound
	// KindConflict marks an operation the current state forbids, such
	// as seating at an occupied table or mutating a finished
	// reservation.
	KindConflict
)

// Error is the typed failure returned by the booking core.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func invalid(msg string) error  { return &Error{Kind: KindValidation, Message: msg} }
func policy(msg string) error   { return &Error{Kind: KindPolicy, Message: msg} }
func notFound(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }
func conflict(msg string) error { return &Error{Kind: KindConflict, Message: msg} }

// IsKind reports whether err is a booking Error of the given kind.
func IsKind(err error, k Kind) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == k
}
