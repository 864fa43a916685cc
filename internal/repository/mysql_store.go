package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/cinebook/internal/model"
)

// stateRowID is the primary key of the single snapshot row.
const stateRowID = 1

// MySQLStore keeps the state document in a one-row MySQL table.  The
// document is the same JSON produced by Encode, so a snapshot can be moved
// between backends unchanged.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore returns a MySQLStore bound to the given database.
func NewMySQLStore(db *sql.DB) *MySQLStore { return &MySQLStore{db: db} }

// EnsureSchema creates the state table if it does not exist.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	const q = `CREATE TABLE IF NOT EXISTS booking_state (
        id TINYINT UNSIGNED NOT NULL PRIMARY KEY,
        document LONGTEXT NOT NULL,
        updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("create booking_state: %w", err)
	}
	return nil
}

// Load reads the snapshot row.  No row is ErrNoState.
func (s *MySQLStore) Load(ctx context.Context) (*model.Catalog, []model.BookingRecord, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM booking_state WHERE id = ?`, stateRowID).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNoState
		}
		return nil, nil, fmt.Errorf("select booking_state: %w", err)
	}
	return Decode([]byte(doc))
}

// Save upserts the snapshot row.
func (s *MySQLStore) Save(ctx context.Context, catalog *model.Catalog, bookings []model.BookingRecord) error {
	data, err := Encode(catalog, bookings)
	if err != nil {
		return err
	}
	const q = `INSERT INTO booking_state (id, document) VALUES (?, ?)
               ON DUPLICATE KEY UPDATE document = VALUES(document)`
	if _, err := s.db.ExecContext(ctx, q, stateRowID, string(data)); err != nil {
		return fmt.Errorf("upsert booking_state: %w", err)
	}
	return nil
}
