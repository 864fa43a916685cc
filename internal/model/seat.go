package model

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// SeatRows is the number of rows in every seat map (labelled A-M).
	SeatRows = 13
	// SeatCols is the number of seats per row (numbered 1-10).
	SeatCols = 10
)

// SeatID addresses one seat inside a showtime's grid.  Row and Col are
// zero-based; the printable form is the row letter followed by the
// one-based column, e.g. Row=2, Col=6 is "C7".
type SeatID struct {
	Row int
	Col int
}

// NewSeatID validates the indices and returns the seat.
func NewSeatID(row, col int) (SeatID, error) {
	if row < 0 || row >= SeatRows || col < 0 || col >= SeatCols {
		return SeatID{}, fmt.Errorf("%w: row=%d col=%d", ErrInvalidSeatIndex, row, col)
	}
	return SeatID{Row: row, Col: col}, nil
}

// ParseSeatID converts a label such as "A1" or "m10" into a SeatID.
// Surrounding whitespace and letter case are ignored.
func ParseSeatID(label string) (SeatID, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if len(s) < 2 {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeatIndex, label)
	}
	row := int(s[0]) - 'A'
	n, err := strconv.Atoi(s[1:])
	if err != nil || s[1] == '+' || s[1] == '-' {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeatIndex, label)
	}
	id, err := NewSeatID(row, n-1)
	if err != nil {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeatIndex, label)
	}
	return id, nil
}

// String formats the seat as its row letter and column number.
func (s SeatID) String() string {
	return RowLabel(s.Row) + strconv.Itoa(s.Col+1)
}

// RowLabel converts a zero-based row index to its letter.
func RowLabel(row int) string {
	return string(rune('A' + row))
}

// ParseSeatIDs parses every label, stopping at the first invalid one.
func ParseSeatIDs(labels []string) ([]SeatID, error) {
	out := make([]SeatID, 0, len(labels))
	for _, l := range labels {
		id, err := ParseSeatID(l)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// SeatLabels formats a list of seats in order.
func SeatLabels(seats []SeatID) []string {
	out := make([]string, len(seats))
	for i, s := range seats {
		out[i] = s.String()
	}
	return out
}

// MarshalText encodes the seat as its label so JSON documents carry "A1"
// rather than an object.
func (s SeatID) MarshalText() ([]byte, error) {
	if _, err := NewSeatID(s.Row, s.Col); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a seat label.
func (s *SeatID) UnmarshalText(b []byte) error {
	id, err := ParseSeatID(string(b))
	if err != nil {
		return err
	}
	*s = id
	return nil
}
