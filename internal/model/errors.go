// Package model holds the seat inventory data structures shared by the
// booking engine, the persistence codec and the HTTP/CLI front ends.
//
// The sentinel errors below are reused across packages so that higher
// layers (handlers, the CLI) can tell failure kinds apart with errors.Is.
package model

import (
	"errors"
	"fmt"
)

// ErrInvalidSeatIndex is returned when a row/column pair or a seat label
// falls outside the 13x10 grid.
var ErrInvalidSeatIndex = errors.New("invalid seat index")

// ErrSeatAlreadyBooked is returned by SeatMap.MarkBooked when the seat has
// already been flipped to unavailable.
var ErrSeatAlreadyBooked = errors.New("seat already booked")

// ErrSeatConflict signals that a seat in a selection is no longer
// available. Use SeatConflictError to learn which seat.
var ErrSeatConflict = errors.New("seat conflict")

// ErrSelectionTooLarge is returned when more than MaxSeatsPerBooking seats
// are selected.
var ErrSelectionTooLarge = errors.New("selection too large")

// ErrEmptySelection is returned when a commit carries no seats.
var ErrEmptySelection = errors.New("empty selection")

// ErrNotFound is returned for an unknown movie, showtime or booking.
var ErrNotFound = errors.New("not found")

// SeatConflictError names the first seat of a selection that was found
// unavailable.
type SeatConflictError struct {
	Seat SeatID
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat %s is no longer available", e.Seat)
}

// Is makes errors.Is(err, ErrSeatConflict) hold for a *SeatConflictError.
func (e *SeatConflictError) Is(target error) bool { return target == ErrSeatConflict }
