package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i, want := range []bool{true, true, false, false} {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "attempt %d", i+1)
	}

	ok, _ := l.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "keys are counted independently")

	now = now.Add(time.Minute)
	ok, _ = l.Allow(ctx, "1.2.3.4")
	assert.True(t, ok, "counter resets after the window")
}

func TestMemoryLimiter_SweepsExpiredWindows(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	_, _ = l.Allow(context.Background(), "a")
	_, _ = l.Allow(context.Background(), "b")
	require.Len(t, l.windows, 2)

	now = now.Add(2 * time.Minute)
	_, _ = l.Allow(context.Background(), "c")

	assert.Len(t, l.windows, 1)
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	l := NewMemoryLimiter(50, time.Hour)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow(context.Background(), "k"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestConfig(t *testing.T) {
	t.Setenv("LOGIN_RATE_LIMIT", "")
	t.Setenv("LOGIN_RATE_WINDOW", "")
	cfg := LoadConfigFromEnv()
	assert.Equal(t, Config{Limit: 10, Interval: time.Minute}, cfg)
	assert.NoError(t, cfg.Validate())

	t.Setenv("LOGIN_RATE_LIMIT", "3")
	t.Setenv("LOGIN_RATE_WINDOW", "30s")
	assert.Equal(t, Config{Limit: 3, Interval: 30 * time.Second}, LoadConfigFromEnv())

	t.Setenv("LOGIN_RATE_LIMIT", "lots")
	assert.Equal(t, 10, LoadConfigFromEnv().Limit)

	assert.Error(t, Config{Limit: 0, Interval: time.Minute}.Validate())
	assert.Error(t, Config{Limit: 1, Interval: time.Millisecond}.Validate())
}
