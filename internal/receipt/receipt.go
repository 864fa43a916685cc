// Package receipt renders a confirmed booking as a human-readable ticket
// and writes it to disk.
package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iliyamo/cinebook/internal/model"
)

// Lines returns the ticket, one field per line.
func Lines(r model.BookingRecord) []string {
	return []string{
		"Booking ID: " + r.BookingID,
		"Movie: " + r.MovieTitle,
		"Showtime: " + r.Showtime,
		"Seats: " + strings.Join(model.SeatLabels(r.Seats), ", "),
		fmt.Sprintf("Total Paid: %d", r.TotalAmount),
		"Payment Method: Card ****" + r.PaymentLast4,
		"Booked At: " + r.CreatedAt.Local().Format("02 Jan 2006 15:04:05"),
	}
}

// FileName names the ticket after the time it is saved, with the booking
// id appended so two tickets saved in the same second do not collide.
func FileName(r model.BookingRecord, now time.Time) string {
	return fmt.Sprintf("ticket_%s_%s.txt", now.Format("20060102150405"), r.BookingID)
}

// Write saves the ticket in dir and returns its path.
func Write(dir string, r model.BookingRecord, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir receipts: %w", err)
	}
	path := filepath.Join(dir, FileName(r, now))
	if err := os.WriteFile(path, []byte(strings.Join(Lines(r), "\n")), 0o644); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}
	return path, nil
}
