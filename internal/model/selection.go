package model

import "fmt"

// Selection is the interactive seat picker state: seats are toggled in
// and out one at a time against the currently displayed availability.
// It enforces the same limits the engine re-checks at commit time.
type Selection struct {
	seats []SeatID
}

// Toggle adds the seat if it is not selected and removes it if it is.
// Adding a seat that is booked in view fails with a *SeatConflictError;
// adding beyond MaxSeatsPerBooking fails with ErrSelectionTooLarge.  A
// failed toggle leaves the selection unchanged.  The returned bool is
// true when the seat ended up selected.
func (s *Selection) Toggle(seat SeatID, view SeatMap) (bool, error) {
	if _, err := NewSeatID(seat.Row, seat.Col); err != nil {
		return false, err
	}
	for i, sel := range s.seats {
		if sel == seat {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return false, nil
		}
	}
	if !view.SeatAvailable(seat) {
		return false, &SeatConflictError{Seat: seat}
	}
	if len(s.seats) >= MaxSeatsPerBooking {
		return false, fmt.Errorf("%w: at most %d seats", ErrSelectionTooLarge, MaxSeatsPerBooking)
	}
	s.seats = append(s.seats, seat)
	return true, nil
}

// Seats returns the selected seats in selection order.
func (s *Selection) Seats() []SeatID {
	return append([]SeatID(nil), s.seats...)
}

// Len returns the number of selected seats.
func (s *Selection) Len() int { return len(s.seats) }

// Contains reports whether the seat is selected.
func (s *Selection) Contains(seat SeatID) bool {
	for _, sel := range s.seats {
		if sel == seat {
			return true
		}
	}
	return false
}
