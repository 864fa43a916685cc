package model

import "fmt"

// SeatMap is the availability grid of a single showtime.  A true cell is
// free; false is booked.  Once a cell is booked it is never freed again:
// there is no cancellation path.
//
// SeatMap is a plain value.  Copying it yields an independent snapshot,
// which is how read-only views are handed to display code.  Callers that
// mutate a shared SeatMap must provide their own locking.
type SeatMap struct {
	available [SeatRows][SeatCols]bool
}

// NewSeatMap returns a grid with every seat available.
func NewSeatMap() SeatMap {
	var m SeatMap
	for r := range m.available {
		for c := range m.available[r] {
			m.available[r][c] = true
		}
	}
	return m
}

// SeatMapFromGrid builds a SeatMap from a row-major boolean matrix.  The
// matrix must be exactly SeatRows x SeatCols.
func SeatMapFromGrid(grid [][]bool) (SeatMap, error) {
	var m SeatMap
	if len(grid) != SeatRows {
		return m, fmt.Errorf("grid has %d rows, want %d", len(grid), SeatRows)
	}
	for r, row := range grid {
		if len(row) != SeatCols {
			return m, fmt.Errorf("grid row %d has %d columns, want %d", r, len(row), SeatCols)
		}
		copy(m.available[r][:], row)
	}
	return m, nil
}

// Grid returns the availability matrix as fresh slices.
func (m *SeatMap) Grid() [][]bool {
	out := make([][]bool, SeatRows)
	for r := range m.available {
		out[r] = append([]bool(nil), m.available[r][:]...)
	}
	return out
}

// IsAvailable reports whether the seat at (row, col) is free.
func (m *SeatMap) IsAvailable(row, col int) (bool, error) {
	if _, err := NewSeatID(row, col); err != nil {
		return false, err
	}
	return m.available[row][col], nil
}

// SeatAvailable is IsAvailable for an already validated SeatID.
func (m *SeatMap) SeatAvailable(s SeatID) bool {
	return m.available[s.Row][s.Col]
}

// MarkBooked flips a free seat to booked.  Booking an already booked seat
// fails with ErrSeatAlreadyBooked and leaves the grid untouched.
func (m *SeatMap) MarkBooked(row, col int) error {
	id, err := NewSeatID(row, col)
	if err != nil {
		return err
	}
	if !m.available[row][col] {
		return fmt.Errorf("%w: %s", ErrSeatAlreadyBooked, id)
	}
	m.available[row][col] = false
	return nil
}

// AvailableCount returns the number of free seats.
func (m *SeatMap) AvailableCount() int {
	n := 0
	for r := range m.available {
		for c := range m.available[r] {
			if m.available[r][c] {
				n++
			}
		}
	}
	return n
}
