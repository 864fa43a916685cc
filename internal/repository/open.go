package repository

import (
	"context"
	"fmt"

	"github.com/iliyamo/cinebook/internal/config"
	"github.com/iliyamo/cinebook/internal/database"
)

// OpenStateStore builds the store selected by cfg.Backend.  The returned
// close function releases any database connection and is never nil.
func OpenStateStore(ctx context.Context, cfg config.StateConfig) (StateStore, func(), error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileStore(cfg.File), func() {}, nil
	case "mysql":
		db, err := database.OpenMySQL(ctx, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		s := NewMySQLStore(db)
		if err := s.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, func() { db.Close() }, nil
	case "postgres":
		pool, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		s := NewPostgresStore(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return s, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown STATE_BACKEND %q", cfg.Backend)
	}
}
