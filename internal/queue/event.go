// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"fmt"
	"time"

	"github.com/iliyamo/cinebook/internal/model"
)

// BookingQueueName is the durable queue booking confirmations go to.
const BookingQueueName = "booking.confirmed"

// BookingConfirmedEvent is published after a commit succeeds.  It carries
// the whole booking record so consumers can render a receipt without
// calling back into the service.
type BookingConfirmedEvent struct {
	BookingID     string   `json:"booking_id"`
	MovieIndex    int      `json:"movie_index"`
	ShowtimeIndex int      `json:"showtime_index"`
	MovieTitle    string   `json:"movie"`
	Showtime      string   `json:"showtime"`
	Seats         []string `json:"seats"`
	Total         int      `json:"total"`
	PaymentLast4  string   `json:"payment_last4"`
	ConfirmedAt   string   `json:"confirmed_at"`
}

// NewBookingConfirmedEvent builds the event for a committed record.
func NewBookingConfirmedEvent(movieIndex, showtimeIndex int, r model.BookingRecord) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		BookingID:     r.BookingID,
		MovieIndex:    movieIndex,
		ShowtimeIndex: showtimeIndex,
		MovieTitle:    r.MovieTitle,
		Showtime:      r.Showtime,
		Seats:         model.SeatLabels(r.Seats),
		Total:         r.TotalAmount,
		PaymentLast4:  r.PaymentLast4,
		ConfirmedAt:   r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// Record converts the event back into a booking record.
func (e BookingConfirmedEvent) Record() (model.BookingRecord, error) {
	seats, err := model.ParseSeatIDs(e.Seats)
	if err != nil {
		return model.BookingRecord{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, e.ConfirmedAt)
	if err != nil {
		return model.BookingRecord{}, fmt.Errorf("confirmed_at: %w", err)
	}
	return model.BookingRecord{
		BookingID:    e.BookingID,
		MovieTitle:   e.MovieTitle,
		Showtime:     e.Showtime,
		Seats:        seats,
		TotalAmount:  e.Total,
		PaymentLast4: e.PaymentLast4,
		CreatedAt:    ts.UTC(),
	}, nil
}
