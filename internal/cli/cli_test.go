package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinebook/internal/model"
	"github.com/iliyamo/cinebook/internal/repository"
)

// scriptedPrompter answers prompts from a fixed list.
type scriptedPrompter struct {
	answers []string
	asked   []string
}

func (s *scriptedPrompter) Ask(label string, _ bool, validate func(string) error) (string, error) {
	s.asked = append(s.asked, label)
	if len(s.answers) == 0 {
		return "", errors.New("no scripted answer for " + label)
	}
	v := s.answers[0]
	s.answers = s.answers[1:]
	if validate != nil {
		if err := validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

type harness struct {
	app   *App
	out   *bytes.Buffer
	store *repository.FileStore
	tty   *scriptedPrompter
}

func newHarness(t *testing.T, answers ...string) *harness {
	t.Helper()
	out := &bytes.Buffer{}
	store := repository.NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))
	tty := &scriptedPrompter{answers: answers}
	app := &App{
		Store:        store,
		Out:          out,
		Prompt:       tty,
		Now:          func() time.Time { return time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC) },
		PricePerSeat: 200,
	}
	return &harness{app: app, out: out, store: store, tty: tty}
}

func (h *harness) run(args ...string) error {
	h.out.Reset()
	cmd := h.app.RootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestMovies(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("movies"))
	out := h.out.String()
	assert.Contains(t, out, "Inception")
	assert.Contains(t, out, "The Matrix")
	assert.Contains(t, out, "[1] 10:00 AM")
}

func TestSeats(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("seats", "--movie", "1", "--showtime", "1"))
	assert.Contains(t, h.out.String(), "130 available")

	assert.ErrorIs(t, h.run("seats", "--movie", "4", "--showtime", "1"), model.ErrNotFound)
	assert.ErrorIs(t, h.run("seats", "--movie", "1", "--showtime", "0"), model.ErrNotFound)
	assert.Error(t, h.run("seats", "--movie", "1"))
}

func TestBook_WithFlagsPersistsState(t *testing.T) {
	h := newHarness(t)
	receipts := t.TempDir()
	err := h.run("book", "--movie", "1", "--showtime", "2", "--seats", "A1,A2",
		"--card", "1111 2222 3333 4444", "--expiry", "12/27", "--cvv", "123", "--receipt", receipts)
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Seats: A1, A2")
	assert.Contains(t, h.out.String(), "Total Paid: 400")
	assert.Empty(t, h.tty.asked)

	files, err := os.ReadDir(receipts)
	require.NoError(t, err)
	assert.Len(t, files, 1)

	catalog, bookings, err := h.store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "4444", bookings[0].PaymentLast4)
	sm, err := catalog.SeatMap(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 128, sm.AvailableCount())

	// a second run sees the persisted booking
	err = h.run("book", "--movie", "1", "--showtime", "2", "--seats", "A2",
		"--card", "1111222233334444", "--expiry", "12/27", "--cvv", "123")
	assert.ErrorIs(t, err, model.ErrSeatConflict)

	require.NoError(t, h.run("bookings"))
	assert.Contains(t, h.out.String(), bookings[0].BookingID)
	require.NoError(t, h.run("bookings", "--id", bookings[0].BookingID))
	assert.Contains(t, h.out.String(), "Payment Method: Card ****4444")
	assert.ErrorIs(t, h.run("bookings", "--id", "nope"), model.ErrNotFound)
}

func TestBook_InteractiveSelectionAndPayment(t *testing.T) {
	// B3 toggled twice ends up deselected; C5 and C6 are kept.
	h := newHarness(t, "b3", "C5", "B3", "c6", "", "1111222233334444", "01/30", "999")
	require.NoError(t, h.run("book", "--movie", "3", "--showtime", "5"))
	assert.Contains(t, h.out.String(), "Seats: C5, C6")
	assert.Equal(t, []string{"Card number", "Expiry (MM/YY)", "CVV"}, h.tty.asked[len(h.tty.asked)-3:])

	_, bookings, err := h.store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Interstellar", bookings[0].MovieTitle)
	assert.Equal(t, "11:00 PM", bookings[0].Showtime)
}

func TestBook_InteractiveEmptySelection(t *testing.T) {
	h := newHarness(t, "")
	assert.ErrorIs(t, h.run("book", "--movie", "1", "--showtime", "1"), model.ErrEmptySelection)

	_, _, err := h.store.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrNoState)
}

func TestBook_InvalidPaymentLeavesStateUntouched(t *testing.T) {
	h := newHarness(t)
	err := h.run("book", "--movie", "1", "--showtime", "1", "--seats", "A1",
		"--card", "1234", "--expiry", "12/27", "--cvv", "123")
	assert.Error(t, err)

	_, _, err = h.store.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrNoState)
}
