package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/iliyamo/cinebook/internal/model"
)

// FileStore keeps the state document in a local JSON file.
type FileStore struct {
	Path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads and decodes the file.  A missing file is ErrNoState.
func (f *FileStore) Load(ctx context.Context) (*model.Catalog, []model.BookingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrNoState
		}
		return nil, nil, fmt.Errorf("read state file: %w", err)
	}
	return Decode(data)
}

// Save writes the document to a temporary file next to Path and renames
// it into place, so a crash never leaves a truncated state file.
func (f *FileStore) Save(ctx context.Context, catalog *model.Catalog, bookings []model.BookingRecord) error {
	data, err := Encode(catalog, bookings)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
