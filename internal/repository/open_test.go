package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinebook/internal/config"
)

func TestOpenStateStore_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, closeFn, err := OpenStateStore(context.Background(), config.StateConfig{Backend: "file", File: path})
	require.NoError(t, err)
	defer closeFn()

	fs, ok := s.(*FileStore)
	require.True(t, ok)
	assert.Equal(t, path, fs.Path)
}

func TestOpenStateStore_Unknown(t *testing.T) {
	_, _, err := OpenStateStore(context.Background(), config.StateConfig{Backend: "s3"})
	assert.Error(t, err)
}
