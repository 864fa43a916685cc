package model

import "time"

// MaxSeatsPerBooking caps how many seats one booking may contain.
const MaxSeatsPerBooking = 10

// BookingRecord is one confirmed booking.  Records are immutable once
// appended to the ledger.
//
// Fields:
//  BookingID    – date-prefixed identifier, e.g. "20250102-4821".
//  MovieTitle   – title of the booked movie.
//  Showtime     – time label of the booked screening.
//  Seats        – seats in the order they were selected; never empty,
//                 never duplicated.
//  TotalAmount  – seats x flat per-seat rate.
//  PaymentLast4 – last four digits of the card used.
//  CreatedAt    – commit timestamp (UTC).
type BookingRecord struct {
	BookingID    string    `json:"booking_id"`
	MovieTitle   string    `json:"movie"`
	Showtime     string    `json:"showtime"`
	Seats        []SeatID  `json:"seats"`
	TotalAmount  int       `json:"total"`
	PaymentLast4 string    `json:"payment_last4"`
	CreatedAt    time.Time `json:"timestamp"`
}

// Clone returns a copy that shares no slices with r.
func (r BookingRecord) Clone() BookingRecord {
	r.Seats = append([]SeatID(nil), r.Seats...)
	return r
}
