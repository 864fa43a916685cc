package receipt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinebook/internal/model"
)

func record(t *testing.T) model.BookingRecord {
	t.Helper()
	seats, err := model.ParseSeatIDs([]string{"A1", "A2"})
	require.NoError(t, err)
	return model.BookingRecord{
		BookingID:    "20250314-4821",
		MovieTitle:   "Inception",
		Showtime:     "10:00 AM",
		Seats:        seats,
		TotalAmount:  400,
		PaymentLast4: "4444",
		CreatedAt:    time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
	}
}

func TestLines(t *testing.T) {
	lines := Lines(record(t))
	require.Len(t, lines, 7)
	assert.Equal(t, "Booking ID: 20250314-4821", lines[0])
	assert.Equal(t, "Movie: Inception", lines[1])
	assert.Equal(t, "Showtime: 10:00 AM", lines[2])
	assert.Equal(t, "Seats: A1, A2", lines[3])
	assert.Equal(t, "Total Paid: 400", lines[4])
	assert.Equal(t, "Payment Method: Card ****4444", lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "Booked At: "))
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tickets")
	now := time.Date(2025, 3, 14, 18, 31, 2, 0, time.Local)

	path, err := Write(dir, record(t), now)
	require.NoError(t, err)
	assert.Equal(t, "ticket_20250314183102_20250314-4821.txt", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(Lines(record(t)), "\n"), string(data))
}
