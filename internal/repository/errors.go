// Package repository holds the data access layer. Repositories work on
// plain database/sql handles; methods with a Tx suffix run inside a
// caller-owned transaction so paired writes (reservation status and
// table occupancy) can be committed or rolled back as one unit.
//
// Sentinel errors let higher layers distinguish failure scenarios
// without inspecting strings.
package repository

import "errors"

// ErrReservationNotFound is returned when a reservation lookup or
// update matches no row.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrTableNotFound is returned when a table lookup or update matches
// no row.
var ErrTableNotFound = errors.New("table not found")

// ErrUserNotFound is returned when a staff account lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when registration hits the unique email
// constraint.
var ErrEmailExists = errors.New("email already exists")
