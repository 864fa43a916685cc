package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinebook/internal/model"
)

func TestFileStore_MissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))

	_, _, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoState)

	c, b, err := LoadOrDefault(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCatalog(), c)
	assert.Empty(t, b)
	for _, m := range c.Movies {
		for i := range m.SeatMaps {
			assert.Equal(t, model.SeatRows*model.SeatCols, m.SeatMaps[i].AvailableCount())
		}
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bookings.json")
	s := NewFileStore(path)
	c := bookedCatalog(t)
	b := []model.BookingRecord{sampleBooking(t)}

	require.NoError(t, s.Save(context.Background(), c, b))
	gotC, gotB, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, c, gotC)
	assert.Equal(t, b, gotB)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileStore_CorruptFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"movies": "nope"}`), 0o644))
	s := NewFileStore(path)

	_, _, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptState)

	c, b, err := LoadOrDefault(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCatalog(), c)
	assert.Empty(t, b)
}
