// Package handler exposes the HTTP handlers of the booking API.  Movie and
// showtime indices in paths are zero-based, matching the engine.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinebook/internal/booking"
	"github.com/iliyamo/cinebook/internal/model"
)

// pathIndices reads the :movie and :showtime path parameters.
func pathIndices(c echo.Context) (movie, showtime int, err error) {
	// Indices are zero-based; range checks happen in the engine.
	movie, err = strconv.Atoi(c.Param("movie"))
	if err != nil {
		return 0, 0, err
	}
	showtime, err = strconv.Atoi(c.Param("showtime"))
	if err != nil {
		return 0, 0, err
	}
	return movie, showtime, nil
}

// statusFor maps booking errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidSeatIndex),
		errors.Is(err, model.ErrEmptySelection),
		errors.Is(err, model.ErrSelectionTooLarge),
		errors.Is(err, booking.ErrInvalidPaymentToken):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrSeatConflict), errors.Is(err, model.ErrSeatAlreadyBooked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorJSON writes err with the status statusFor picks.  Internal errors
// are not echoed to the client.
func errorJSON(c echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("handler: internal error on %s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(status, echo.Map{"error": "internal error"})
	}
	body := echo.Map{"error": err.Error()}
	// Name the taken seat so clients can refresh just that cell.
	var conflict *model.SeatConflictError
	if errors.As(err, &conflict) {
		body["seat"] = conflict.Seat.String()
	}
	return c.JSON(status, body)
}
