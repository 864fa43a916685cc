package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinebook/internal/booking"
	"github.com/iliyamo/cinebook/internal/model"
)

// PublicHandler serves the unauthenticated browsing endpoints.
type PublicHandler struct {
	Engine *booking.Engine
}

// PublicSeat is one cell of a seat map response.
type PublicSeat struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// PublicRow is one lettered row of a seat map response.
type PublicRow struct {
	Row   string       `json:"row"`
	Seats []PublicSeat `json:"seats"`
}

// ListMovies handles GET /v1/movies.
func (h *PublicHandler) ListMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"items":          h.Engine.ListMovies(),
		"price_per_seat": h.Engine.PricePerSeat(),
	})
}

// GetSeatMap handles GET /v1/movies/:movie/showtimes/:showtime/seats.  The
// response is a snapshot; seats may be taken by the time a commit arrives.
func (h *PublicHandler) GetSeatMap(c echo.Context) error {
	movie, showtime, err := pathIndices(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie or showtime index"})
	}
	sm, err := h.Engine.GetSeatMap(movie, showtime)
	if err != nil {
		return errorJSON(c, err)
	}
	summary := h.Engine.ListMovies()[movie] // index validated by GetSeatMap

	// Rows A..M, each with seats 1..10.
	rows := make([]PublicRow, 0, model.SeatRows)
	for r := 0; r < model.SeatRows; r++ {
		row := PublicRow{Row: model.RowLabel(r), Seats: make([]PublicSeat, 0, model.SeatCols)}
		for col := 0; col < model.SeatCols; col++ {
			id := model.SeatID{Row: r, Col: col}
			row.Seats = append(row.Seats, PublicSeat{Label: id.String(), Available: sm.SeatAvailable(id)})
		}
		rows = append(rows, row)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie":     summary.Title,
		"showtime":  summary.Showtimes[showtime],
		"available": sm.AvailableCount(),
		"rows":      rows,
	})
}
