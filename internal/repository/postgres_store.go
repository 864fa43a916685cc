package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iliyamo/cinebook/internal/model"
)

// PostgresStore implements StateStore on a PostgreSQL table through a pgx
// pool.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{Pool: pool}
}

// EnsureSchema creates the state table if it does not exist.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS booking_state (
			id SMALLINT PRIMARY KEY,
			document TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("error creating booking_state: %w", err)
	}
	return nil
}

func (p *PostgresStore) Load(ctx context.Context) (*model.Catalog, []model.BookingRecord, error) {
	var doc string
	err := p.Pool.QueryRow(ctx, `SELECT document FROM booking_state WHERE id = $1`, stateRowID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNoState
		}
		return nil, nil, fmt.Errorf("error selecting booking_state: %w", err)
	}
	return Decode([]byte(doc))
}

func (p *PostgresStore) Save(ctx context.Context, catalog *model.Catalog, bookings []model.BookingRecord) error {
	data, err := Encode(catalog, bookings)
	if err != nil {
		return err
	}
	_, err = p.Pool.Exec(ctx, `
		INSERT INTO booking_state (id, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()
	`, stateRowID, string(data))
	if err != nil {
		return fmt.Errorf("error upserting booking_state: %w", err)
	}
	return nil
}
