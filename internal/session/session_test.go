package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "a", "running runs studied"))
	require.NoError(t, s.Set(ctx, "a", "geese"))
	text, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "geese", text)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "old", "first"))
	now = now.Add(2 * time.Minute)

	_, ok, err := s.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok, "entry should have expired")

	require.NoError(t, s.Set(ctx, "stale", "x"))
	now = now.Add(2 * time.Minute)
	require.NoError(t, s.Set(ctx, "fresh", "y"))
	assert.Equal(t, 1, s.Len(), "Set should purge expired entries")
}

func TestIDs(t *testing.T) {
	id := NewID()
	assert.True(t, ValidID(id))
	assert.NotEqual(t, id, NewID())
	assert.False(t, ValidID("not-a-session"))
}

// NOTE: requires a running Redis; set LEXIKIT_TEST_REDIS_URL to enable.
func TestRedisStoreIntegration(t *testing.T) {
	url := os.Getenv("LEXIKIT_TEST_REDIS_URL")
	if url == "" {
		t.Skip("LEXIKIT_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	s, err := NewRedisStore(ctx, url, "lexikit:test:", time.Minute)
	require.NoError(t, err)
	defer s.Close()

	id := NewID()
	_, ok, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, id, "hello world"))
	text, ok, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello world", text)
}

func TestNewRedisStoreBadURL(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "://nope", "", time.Minute)
	assert.Error(t, err)
}
