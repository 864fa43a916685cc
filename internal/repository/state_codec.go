package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iliyamo/cinebook/internal/model"
)

// naiveISOLayout accepts timestamps written without a zone offset, which
// older state files contain.  They are read as UTC.
const naiveISOLayout = "2006-01-02T15:04:05.999999999"

type stateDoc struct {
	Movies   *[]movieDoc   `json:"movies"`
	Bookings *[]bookingDoc `json:"bookings"`
}

// movieDoc uses pointer elements so a JSON null cell or label is seen as
// absent instead of decoding to false or "".
type movieDoc struct {
	Title          *string     `json:"title"`
	AvailableSeats [][][]*bool `json:"available_seats"`
	ShowTimes      []*string   `json:"show_times"`
}

type bookingDoc struct {
	BookingID    *string  `json:"booking_id"`
	Movie        *string  `json:"movie"`
	Showtime     *string  `json:"showtime"`
	Seats        []string `json:"seats"`
	Total        *int     `json:"total"`
	PaymentLast4 *string  `json:"payment_last4"`
	Timestamp    *string  `json:"timestamp"`
}

// Encode serializes the catalog and ledger into an indented JSON document.
// Seat grids are written as row-major boolean matrices.
func Encode(catalog *model.Catalog, bookings []model.BookingRecord) ([]byte, error) {
	movies := make([]movieDoc, 0, len(catalog.Movies))
	for _, m := range catalog.Movies {
		title := m.Title
		grids := make([][][]*bool, len(m.SeatMaps))
		for i := range m.SeatMaps {
			grids[i] = encodeGrid(m.SeatMaps[i].Grid())
		}
		times := make([]*string, len(m.Showtimes))
		for i := range m.Showtimes {
			times[i] = &m.Showtimes[i]
		}
		movies = append(movies, movieDoc{
			Title:          &title,
			AvailableSeats: grids,
			ShowTimes:      times,
		})
	}
	books := make([]bookingDoc, 0, len(bookings))
	for _, b := range bookings {
		b := b
		ts := b.CreatedAt.UTC().Format(time.RFC3339Nano)
		books = append(books, bookingDoc{
			BookingID:    &b.BookingID,
			Movie:        &b.MovieTitle,
			Showtime:     &b.Showtime,
			Seats:        model.SeatLabels(b.Seats),
			Total:        &b.TotalAmount,
			PaymentLast4: &b.PaymentLast4,
			Timestamp:    &ts,
		})
	}
	data, err := json.MarshalIndent(stateDoc{Movies: &movies, Bookings: &books}, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode is the inverse of Encode.  Any structural problem is reported as
// ErrCorruptState.
func Decode(data []byte) (*model.Catalog, []model.BookingRecord, error) {
	var doc stateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if doc.Movies == nil {
		return nil, nil, fmt.Errorf("%w: missing movies", ErrCorruptState)
	}
	if doc.Bookings == nil {
		return nil, nil, fmt.Errorf("%w: missing bookings", ErrCorruptState)
	}

	catalog := &model.Catalog{Movies: make([]model.Movie, 0, len(*doc.Movies))}
	for i, md := range *doc.Movies {
		m, err := decodeMovie(md)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: movie %d: %v", ErrCorruptState, i, err)
		}
		catalog.Movies = append(catalog.Movies, m)
	}

	bookings := make([]model.BookingRecord, 0, len(*doc.Bookings))
	for i, bd := range *doc.Bookings {
		b, err := decodeBooking(bd)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: booking %d: %v", ErrCorruptState, i, err)
		}
		bookings = append(bookings, b)
	}
	return catalog, bookings, nil
}

func decodeMovie(md movieDoc) (model.Movie, error) {
	if md.Title == nil {
		return model.Movie{}, fmt.Errorf("missing title")
	}
	if len(md.ShowTimes) == 0 {
		return model.Movie{}, fmt.Errorf("missing show_times")
	}
	if len(md.AvailableSeats) != len(md.ShowTimes) {
		return model.Movie{}, fmt.Errorf("%d seat grids for %d showtimes", len(md.AvailableSeats), len(md.ShowTimes))
	}
	m := model.Movie{
		Title:     *md.Title,
		Showtimes: make([]string, len(md.ShowTimes)),
		SeatMaps:  make([]model.SeatMap, len(md.AvailableSeats)),
	}
	for i, st := range md.ShowTimes {
		if st == nil {
			return model.Movie{}, fmt.Errorf("show_times[%d] is null", i)
		}
		m.Showtimes[i] = *st
	}
	for i, doc := range md.AvailableSeats {
		grid, err := decodeGrid(doc)
		if err != nil {
			return model.Movie{}, fmt.Errorf("showtime %d: %v", i, err)
		}
		sm, err := model.SeatMapFromGrid(grid)
		if err != nil {
			return model.Movie{}, fmt.Errorf("showtime %d: %v", i, err)
		}
		m.SeatMaps[i] = sm
	}
	return m, nil
}

func encodeGrid(grid [][]bool) [][]*bool {
	out := make([][]*bool, len(grid))
	for r, row := range grid {
		out[r] = make([]*bool, len(row))
		for c := range row {
			out[r][c] = &row[c]
		}
	}
	return out
}

// decodeGrid rejects null cells; shape is checked by SeatMapFromGrid.
func decodeGrid(doc [][]*bool) ([][]bool, error) {
	out := make([][]bool, len(doc))
	for r, row := range doc {
		out[r] = make([]bool, len(row))
		for c, cell := range row {
			if cell == nil {
				return nil, fmt.Errorf("row %d col %d is null", r, c)
			}
			out[r][c] = *cell
		}
	}
	return out, nil
}

func decodeBooking(bd bookingDoc) (model.BookingRecord, error) {
	switch {
	case bd.BookingID == nil:
		return model.BookingRecord{}, fmt.Errorf("missing booking_id")
	case bd.Movie == nil:
		return model.BookingRecord{}, fmt.Errorf("missing movie")
	case bd.Showtime == nil:
		return model.BookingRecord{}, fmt.Errorf("missing showtime")
	case len(bd.Seats) == 0:
		return model.BookingRecord{}, fmt.Errorf("missing seats")
	case bd.Total == nil:
		return model.BookingRecord{}, fmt.Errorf("missing total")
	case bd.PaymentLast4 == nil:
		return model.BookingRecord{}, fmt.Errorf("missing payment_last4")
	case bd.Timestamp == nil:
		return model.BookingRecord{}, fmt.Errorf("missing timestamp")
	}
	if !isLast4(*bd.PaymentLast4) {
		return model.BookingRecord{}, fmt.Errorf("payment_last4 %q is not 4 digits", *bd.PaymentLast4)
	}
	seats, err := model.ParseSeatIDs(bd.Seats)
	if err != nil {
		return model.BookingRecord{}, err
	}
	seen := make(map[model.SeatID]bool, len(seats))
	for _, s := range seats {
		if seen[s] {
			return model.BookingRecord{}, fmt.Errorf("duplicate seat %s", s)
		}
		seen[s] = true
	}
	ts, err := parseTimestamp(*bd.Timestamp)
	if err != nil {
		return model.BookingRecord{}, err
	}
	return model.BookingRecord{
		BookingID:    *bd.BookingID,
		MovieTitle:   *bd.Movie,
		Showtime:     *bd.Showtime,
		Seats:        seats,
		TotalAmount:  *bd.Total,
		PaymentLast4: *bd.PaymentLast4,
		CreatedAt:    ts,
	}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(naiveISOLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q is not ISO-8601", s)
	}
	return t.UTC(), nil
}

func isLast4(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
