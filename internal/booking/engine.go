// Package booking implements the seat reservation transaction: it owns the
// catalog and the ledger, validates seat selections and payment tokens, and
// commits bookings atomically per showtime.
package booking

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iliyamo/cinebook/internal/model"
)

// DefaultPricePerSeat is the flat rate charged for every seat.
const DefaultPricePerSeat = 200

// maxIDAttempts bounds how often a colliding booking id is regenerated.
const maxIDAttempts = 64

// ErrBookingIDExhausted is returned when no unused booking id could be
// generated.
var ErrBookingIDExhausted = errors.New("could not generate unused booking id")

// CommitRequest is everything needed to turn a selection into a booking.
type CommitRequest struct {
	MovieIndex    int
	ShowtimeIndex int
	Seats         []model.SeatID
	Payment       PaymentToken
}

// Engine holds the whole booking state and is the only writer of seat
// maps.  Commits on different showtimes proceed in parallel; commits on the
// same showtime are serialized by that showtime's lock.  Snapshot excludes
// all commits so persisted state never contains a half-applied booking.
type Engine struct {
	state   sync.RWMutex
	locks   [][]sync.Mutex
	catalog *model.Catalog
	ledger  *Ledger

	pricePerSeat int
	now          func() time.Time
	ids          IDGenerator
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithPricePerSeat overrides DefaultPricePerSeat.
func WithPricePerSeat(price int) Option {
	return func(e *Engine) {
		if price > 0 {
			e.pricePerSeat = price
		}
	}
}

// WithIDGenerator overrides the booking id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) { e.ids = g }
}

// NewEngine takes ownership of catalog and seeds the ledger with records.
// A nil catalog is replaced with model.DefaultCatalog.
func NewEngine(catalog *model.Catalog, records []model.BookingRecord, opts ...Option) *Engine {
	if catalog == nil {
		catalog = model.DefaultCatalog()
	}
	e := &Engine{
		catalog:      catalog,
		ledger:       NewLedger(records),
		pricePerSeat: DefaultPricePerSeat,
		now:          time.Now,
		ids:          DateSuffixIDs{},
	}
	for _, o := range opts {
		o(e)
	}
	// One lock per (movie, showtime); the catalog shape never changes.
	e.locks = make([][]sync.Mutex, len(catalog.Movies))
	for i, m := range catalog.Movies {
		e.locks[i] = make([]sync.Mutex, len(m.SeatMaps))
	}
	return e
}

// PricePerSeat returns the flat per-seat rate in use.
func (e *Engine) PricePerSeat() int { return e.pricePerSeat }

// ListMovies returns titles and showtimes of every movie.
func (e *Engine) ListMovies() []model.MovieSummary {
	e.state.RLock()
	defer e.state.RUnlock()
	return e.catalog.ListMovies()
}

// GetSeatMap returns a snapshot of a showtime's availability.
func (e *Engine) GetSeatMap(movieIndex, showtimeIndex int) (model.SeatMap, error) {
	e.state.RLock()
	defer e.state.RUnlock()
	sm, err := e.catalog.SeatMap(movieIndex, showtimeIndex)
	if err != nil {
		return model.SeatMap{}, err
	}
	mu := &e.locks[movieIndex][showtimeIndex]
	mu.Lock()
	defer mu.Unlock()
	return *sm, nil
}

// ListBookings returns the ledger in append order.
func (e *Engine) ListBookings() []model.BookingRecord {
	return e.ledger.List()
}

// FindBooking looks a booking up by id.
func (e *Engine) FindBooking(id string) (model.BookingRecord, error) {
	return e.ledger.Find(id)
}

// Snapshot returns deep copies of the catalog and ledger taken while no
// commit is in flight.
func (e *Engine) Snapshot() (*model.Catalog, []model.BookingRecord) {
	e.state.Lock()
	defer e.state.Unlock()
	return e.catalog.Clone(), e.ledger.List()
}

// Commit books the requested seats.  Duplicate seats in the request are
// collapsed, keeping the first occurrence.  Either every seat is flipped
// and one record is appended, or nothing changes and an error is
// returned:
//
//   - model.ErrNotFound for an unknown movie or showtime
//   - model.ErrInvalidSeatIndex for a seat outside the grid
//   - model.ErrEmptySelection / model.ErrSelectionTooLarge
//   - ErrInvalidPaymentToken for a malformed card, expiry or CVV
//   - *model.SeatConflictError (matches model.ErrSeatConflict) when a seat
//     is already booked
func (e *Engine) Commit(req CommitRequest) (model.BookingRecord, error) {
	// Shared hold: commits on other showtimes run alongside, Snapshot waits.
	e.state.RLock()
	defer e.state.RUnlock()

	movie, err := e.catalog.Movie(req.MovieIndex)
	if err != nil {
		return model.BookingRecord{}, err
	}
	sm, err := e.catalog.SeatMap(req.MovieIndex, req.ShowtimeIndex)
	if err != nil {
		return model.BookingRecord{}, err
	}

	seats, err := uniqueSeats(req.Seats)
	if err != nil {
		return model.BookingRecord{}, err
	}
	if len(seats) == 0 {
		return model.BookingRecord{}, model.ErrEmptySelection
	}
	if len(seats) > model.MaxSeatsPerBooking {
		return model.BookingRecord{}, fmt.Errorf("%w: %d seats requested, at most %d allowed",
			model.ErrSelectionTooLarge, len(seats), model.MaxSeatsPerBooking)
	}
	if err := req.Payment.Validate(); err != nil {
		return model.BookingRecord{}, err
	}

	// Held until the record is appended: check, flip and append are one unit.
	mu := &e.locks[req.MovieIndex][req.ShowtimeIndex]
	mu.Lock()
	defer mu.Unlock()

	// First taken seat wins the error; nothing has been touched yet.
	for _, s := range seats {
		if !sm.SeatAvailable(s) {
			return model.BookingRecord{}, &model.SeatConflictError{Seat: s}
		}
	}

	now := e.now()
	// Ids are checked against the ledger, so a retry never reuses one.
	id, err := e.nextID(now)
	if err != nil {
		return model.BookingRecord{}, err
	}

	// Flip on a copy so the live map changes in a single assignment.
	next := *sm
	for _, s := range seats {
		if err := next.MarkBooked(s.Row, s.Col); err != nil {
			return model.BookingRecord{}, err
		}
	}

	rec := model.BookingRecord{
		BookingID:    id,
		MovieTitle:   movie.Title,
		Showtime:     movie.Showtimes[req.ShowtimeIndex],
		Seats:        seats,
		TotalAmount:  len(seats) * e.pricePerSeat,
		PaymentLast4: req.Payment.Last4(),
		CreatedAt:    now.UTC(),
	}
	*sm = next
	e.ledger.Append(rec) // same lock as the flip above
	return rec.Clone(), nil
}

func (e *Engine) nextID(now time.Time) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := e.ids.NewID(now)
		if !e.ledger.Has(id) {
			return id, nil
		}
	}
	return "", ErrBookingIDExhausted
}

// uniqueSeats validates each seat and drops repeats, keeping selection
// order.
func uniqueSeats(in []model.SeatID) ([]model.SeatID, error) {
	out := make([]model.SeatID, 0, len(in))
	seen := make(map[model.SeatID]struct{}, len(in))
	for _, s := range in {
		if _, err := model.NewSeatID(s.Row, s.Col); err != nil {
			return nil, err
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
