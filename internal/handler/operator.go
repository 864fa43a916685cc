package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinebook/internal/booking"
	"github.com/iliyamo/cinebook/internal/repository"
)

// OperatorHandler serves the operator-only ledger and snapshot endpoints.
type OperatorHandler struct {
	Engine *booking.Engine
	Store  repository.StateStore
}

// ListBookings handles GET /v1/bookings.  Records are in commit order.
func (h *OperatorHandler) ListBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.ListBookings()})
}

// GetBooking handles GET /v1/bookings/:id.
func (h *OperatorHandler) GetBooking(c echo.Context) error {
	rec, err := h.Engine.FindBooking(c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// Snapshot handles POST /v1/admin/snapshot.  It persists a consistent copy
// of the catalog and ledger.
func (h *OperatorHandler) Snapshot(c echo.Context) error {
	// Snapshot blocks commits only while copying, not while saving.
	catalog, bookings := h.Engine.Snapshot()
	if err := h.Store.Save(c.Request().Context(), catalog, bookings); err != nil {
		log.Printf("handler: snapshot save failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save state"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movies":   len(catalog.Movies),
		"bookings": len(bookings),
	})
}
