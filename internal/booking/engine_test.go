package booking

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinebook/internal/model"
)

var validPayment = PaymentToken{CardNumber: "4444444444444444", Expiry: "12/30", CVV: "123"}

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)
}

func seats(t *testing.T, labels ...string) []model.SeatID {
	t.Helper()
	out, err := model.ParseSeatIDs(labels)
	require.NoError(t, err)
	return out
}

func newTestEngine() *Engine {
	return NewEngine(model.DefaultCatalog(), nil, WithClock(fixedClock))
}

func TestCommit_BooksSeats(t *testing.T) {
	e := newTestEngine()

	rec, err := e.Commit(CommitRequest{
		MovieIndex:    0,
		ShowtimeIndex: 0,
		Seats:         seats(t, "A1", "A2"),
		Payment:       validPayment,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "A2"}, model.SeatLabels(rec.Seats))
	assert.Equal(t, 400, rec.TotalAmount)
	assert.Equal(t, "4444", rec.PaymentLast4)
	assert.Equal(t, "Inception", rec.MovieTitle)
	assert.Equal(t, "10:00 AM", rec.Showtime)
	assert.Regexp(t, `^20250314-[1-9]\d{3}$`, rec.BookingID)
	assert.True(t, rec.CreatedAt.Equal(fixedClock()))

	sm, err := e.GetSeatMap(0, 0)
	require.NoError(t, err)
	for r := 0; r < model.SeatRows; r++ {
		for c := 0; c < model.SeatCols; c++ {
			ok, err := sm.IsAvailable(r, c)
			require.NoError(t, err)
			booked := r == 0 && (c == 0 || c == 1)
			assert.Equal(t, !booked, ok, "row=%d col=%d", r, c)
		}
	}

	other, err := e.GetSeatMap(0, 1)
	require.NoError(t, err)
	assert.Equal(t, model.SeatRows*model.SeatCols, other.AvailableCount())

	require.Len(t, e.ListBookings(), 1)
	assert.Equal(t, rec, e.ListBookings()[0])
}

func TestCommit_KeepsSelectionOrder(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Commit(CommitRequest{Seats: seats(t, "C7", "A1", "B3"), Payment: validPayment})
	require.NoError(t, err)
	assert.Equal(t, []string{"C7", "A1", "B3"}, model.SeatLabels(rec.Seats))
}

func TestCommit_CollapsesDuplicates(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Commit(CommitRequest{Seats: seats(t, "A1", "A2", "A1"), Payment: validPayment})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, model.SeatLabels(rec.Seats))
	assert.Equal(t, 400, rec.TotalAmount)
}

func TestCommit_EmptySelection(t *testing.T) {
	e := newTestEngine()
	before, _ := e.GetSeatMap(0, 0)

	_, err := e.Commit(CommitRequest{Payment: validPayment})
	assert.ErrorIs(t, err, model.ErrEmptySelection)

	after, _ := e.GetSeatMap(0, 0)
	assert.Equal(t, before, after)
	assert.Empty(t, e.ListBookings())
}

func TestCommit_SelectionLimit(t *testing.T) {
	e := newTestEngine()
	eleven := seats(t, "A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10", "B1")

	_, err := e.Commit(CommitRequest{Seats: eleven, Payment: validPayment})
	assert.ErrorIs(t, err, model.ErrSelectionTooLarge)
	assert.Empty(t, e.ListBookings())
	sm, _ := e.GetSeatMap(0, 0)
	assert.Equal(t, model.SeatRows*model.SeatCols, sm.AvailableCount())

	rec, err := e.Commit(CommitRequest{Seats: eleven[:10], Payment: validPayment})
	require.NoError(t, err)
	assert.Len(t, rec.Seats, 10)
	assert.Equal(t, 2000, rec.TotalAmount)
}

func TestCommit_SeatConflict(t *testing.T) {
	e := newTestEngine()
	_, err := e.Commit(CommitRequest{Seats: seats(t, "A1"), Payment: validPayment})
	require.NoError(t, err)
	before, _ := e.GetSeatMap(0, 0)

	_, err = e.Commit(CommitRequest{Seats: seats(t, "B5", "A1"), Payment: validPayment})
	require.ErrorIs(t, err, model.ErrSeatConflict)
	var conflict *model.SeatConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "A1", conflict.Seat.String())

	after, _ := e.GetSeatMap(0, 0)
	assert.Equal(t, before, after, "B5 must not be flipped")
	assert.Len(t, e.ListBookings(), 1)
}

func TestCommit_InvalidPayment(t *testing.T) {
	e := newTestEngine()
	_, err := e.Commit(CommitRequest{
		Seats:   seats(t, "A1"),
		Payment: PaymentToken{CardNumber: "123", Expiry: "13/30", CVV: "12"},
	})
	assert.ErrorIs(t, err, ErrInvalidPaymentToken)

	sm, _ := e.GetSeatMap(0, 0)
	assert.True(t, sm.SeatAvailable(model.SeatID{}))
	assert.Empty(t, e.ListBookings())
}

func TestCommit_NotFound(t *testing.T) {
	e := newTestEngine()
	for _, idx := range [][2]int{{3, 0}, {-1, 0}, {0, 5}, {0, -1}} {
		_, err := e.Commit(CommitRequest{MovieIndex: idx[0], ShowtimeIndex: idx[1], Seats: seats(t, "A1"), Payment: validPayment})
		assert.ErrorIs(t, err, model.ErrNotFound, "%v", idx)
	}
	_, err := e.GetSeatMap(7, 0)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCommit_InvalidSeatIndex(t *testing.T) {
	e := newTestEngine()
	_, err := e.Commit(CommitRequest{Seats: []model.SeatID{{Row: 13, Col: 0}}, Payment: validPayment})
	assert.ErrorIs(t, err, model.ErrInvalidSeatIndex)
}

func TestCommit_RegeneratesCollidingIDs(t *testing.T) {
	var calls int32
	ids := IDGeneratorFunc(func(now time.Time) string {
		n := atomic.AddInt32(&calls, 1)
		if n <= 2 {
			return "20250314-1111"
		}
		return fmt.Sprintf("20250314-%d", 1000+n)
	})
	e := NewEngine(model.DefaultCatalog(), nil, WithClock(fixedClock), WithIDGenerator(ids))

	first, err := e.Commit(CommitRequest{Seats: seats(t, "A1"), Payment: validPayment})
	require.NoError(t, err)
	second, err := e.Commit(CommitRequest{Seats: seats(t, "A2"), Payment: validPayment})
	require.NoError(t, err)

	assert.Equal(t, "20250314-1111", first.BookingID)
	assert.NotEqual(t, first.BookingID, second.BookingID)
}

func TestCommit_IDExhausted(t *testing.T) {
	same := IDGeneratorFunc(func(time.Time) string { return "X" })
	e := NewEngine(model.DefaultCatalog(), []model.BookingRecord{{BookingID: "X"}}, WithIDGenerator(same))

	_, err := e.Commit(CommitRequest{Seats: seats(t, "A1"), Payment: validPayment})
	assert.ErrorIs(t, err, ErrBookingIDExhausted)
	sm, _ := e.GetSeatMap(0, 0)
	assert.True(t, sm.SeatAvailable(model.SeatID{}))
}

func TestWithPricePerSeat(t *testing.T) {
	e := NewEngine(nil, nil, WithPricePerSeat(350))
	rec, err := e.Commit(CommitRequest{Seats: seats(t, "A1", "A2", "A3"), Payment: validPayment})
	require.NoError(t, err)
	assert.Equal(t, 1050, rec.TotalAmount)
}

func TestCommit_ConcurrentSameSeat(t *testing.T) {
	e := NewEngine(model.DefaultCatalog(), nil)
	const workers = 32

	var wg sync.WaitGroup
	var ok int32
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Commit(CommitRequest{MovieIndex: 1, ShowtimeIndex: 3, Seats: []model.SeatID{{Row: 5, Col: 5}}, Payment: validPayment})
			if err == nil {
				atomic.AddInt32(&ok, 1)
				return
			}
			assert.ErrorIs(t, err, model.ErrSeatConflict)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok)
	assert.Len(t, e.ListBookings(), 1)
}

func TestSnapshot_IsDetached(t *testing.T) {
	e := newTestEngine()
	_, err := e.Commit(CommitRequest{Seats: seats(t, "A1"), Payment: validPayment})
	require.NoError(t, err)

	cat, recs := e.Snapshot()
	require.Len(t, recs, 1)

	_, err = e.Commit(CommitRequest{Seats: seats(t, "A2"), Payment: validPayment})
	require.NoError(t, err)

	sm, err := cat.SeatMap(0, 0)
	require.NoError(t, err)
	assert.True(t, sm.SeatAvailable(model.SeatID{Row: 0, Col: 1}))
	assert.False(t, sm.SeatAvailable(model.SeatID{Row: 0, Col: 0}))
	assert.Len(t, recs, 1)
}

func TestFindBooking(t *testing.T) {
	e := newTestEngine()
	rec, err := e.Commit(CommitRequest{Seats: seats(t, "D4"), Payment: validPayment})
	require.NoError(t, err)

	got, err := e.FindBooking(rec.BookingID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	_, err = e.FindBooking("nope")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
