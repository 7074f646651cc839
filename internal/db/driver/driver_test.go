package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estimatecheck/marketplace/internal/db"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(Config{Driver: db.DriverMemory}, nil)
	require.NoError(t, err)
	defer s.Close()
	assert.NoError(t, s.Ping(context.Background()))
}

func TestOpen_Badger(t *testing.T) {
	s, err := Open(Config{Driver: db.DriverBadger, Path: t.TempDir()}, nil)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestOpen_RedisRequiresAddrs(t *testing.T) {
	_, err := Open(Config{Driver: db.DriverValkey}, nil)
	assert.Error(t, err)
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(Config{Driver: "sqlite"}, nil)
	assert.ErrorContains(t, err, "unknown database driver")
}
