package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_PASSWORD", "")

	cfg := LoadConfigFromEnv()
	assert.False(t, cfg.Enabled())
	assert.Equal(t, "6379", cfg.Port)

	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	cfg = LoadConfigFromEnv()
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "cache:6380", cfg.Addr())
}

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	cfg := Config{Host: mr.Host(), Port: mr.Port()}
	rdb, err := NewRedisClient(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = rdb.Close() }()

	mr.Close()
	_, err = NewRedisClient(context.Background(), cfg)
	assert.Error(t, err, "ping fails once the server is gone")
}
