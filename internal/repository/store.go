package repository

import (
	"context"
	"errors"
	"log"

	"github.com/iliyamo/cinebook/internal/model"
)

// StateStore persists the catalog and ledger as a single document.
// Implementations: FileStore, MySQLStore, PostgresStore.
type StateStore interface {
	// Load returns ErrNoState when nothing has been saved yet.
	Load(ctx context.Context) (*model.Catalog, []model.BookingRecord, error)
	Save(ctx context.Context, catalog *model.Catalog, bookings []model.BookingRecord) error
}

// LoadOrDefault loads the persisted state.  Missing state yields the
// default catalog and an empty ledger; corrupt state is logged and
// replaced the same way so startup never aborts on a bad document.  Other
// errors (I/O, database) are returned.
func LoadOrDefault(ctx context.Context, s StateStore) (*model.Catalog, []model.BookingRecord, error) {
	catalog, bookings, err := s.Load(ctx)
	switch {
	case err == nil:
		return catalog, bookings, nil
	case errors.Is(err, ErrNoState):
		return model.DefaultCatalog(), nil, nil
	case errors.Is(err, ErrCorruptState):
		log.Printf("state: %v; starting from the default catalog", err)
		return model.DefaultCatalog(), nil, nil
	default:
		return nil, nil, err
	}
}
