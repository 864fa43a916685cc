package database

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN("booker", "p@ss:word", "db.internal", "3307", "cinebook")

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "booker", cfg.User)
	assert.Equal(t, "p@ss:word", cfg.Passwd)
	assert.Equal(t, "db.internal:3307", cfg.Addr)
	assert.Equal(t, "cinebook", cfg.DBName)
	assert.True(t, cfg.ParseTime)
}

func TestOpenPostgres_RequiresDSN(t *testing.T) {
	_, err := OpenPostgres(t.Context(), "")
	assert.Error(t, err)
}
