package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinebook/internal/booking"
	"github.com/iliyamo/cinebook/internal/model"
	"github.com/iliyamo/cinebook/internal/queue"
)

// EventPublisher publishes booking confirmations.  Implementations must be
// safe for concurrent use.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error
}

// BookingHandler serves booking commits.
type BookingHandler struct {
	Engine    *booking.Engine
	Publisher EventPublisher // optional
}

type commitReq struct {
	Seats   []string             `json:"seats"`
	Payment booking.PaymentToken `json:"payment"`
}

// Commit handles POST /v1/movies/:movie/showtimes/:showtime/bookings.  The
// whole selection is booked or nothing is; on success the confirmation is
// published in the background and the record is returned with 201.
func (h *BookingHandler) Commit(c echo.Context) error {
	movie, showtime, err := pathIndices(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie or showtime index"})
	}
	var req commitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	// Labels like "a1" are accepted; anything off the grid is a 400.
	seats, err := model.ParseSeatIDs(req.Seats)
	if err != nil {
		return errorJSON(c, err)
	}

	rec, err := h.Engine.Commit(booking.CommitRequest{
		MovieIndex:    movie,
		ShowtimeIndex: showtime,
		Seats:         seats,
		Payment:       req.Payment,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	// Never log the card number; last4 is already in the record.
	log.Printf("booking: confirmed %s movie=%q showtime=%q seats=%v total=%d",
		rec.BookingID, rec.MovieTitle, rec.Showtime, model.SeatLabels(rec.Seats), rec.TotalAmount)

	// Publishing is best effort and must not delay or fail the response.
	if h.Publisher != nil {
		ev := queue.NewBookingConfirmedEvent(movie, showtime, rec)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = h.Publisher.PublishBookingConfirmed(ctx, ev)
		}()
	}
	return c.JSON(http.StatusCreated, echo.Map{"booking": rec})
}
