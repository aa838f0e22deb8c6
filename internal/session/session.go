// Package session remembers the last text a visitor submitted so the
// comparison view can reuse it.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store keeps one text per session id.
type Store interface {
	Get(ctx context.Context, id string) (string, bool, error)
	Set(ctx context.Context, id, text string) error
	Close() error
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like one produced by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// --- Memory ---

type entry struct {
	text    string
	expires time.Time
}

// MemoryStore is an in-process Store with per-entry expiry. Expired entries
// are purged lazily on Set.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return "", false, nil
	}
	if !m.now().Before(e.expires) {
		delete(m.entries, id)
		return "", false, nil
	}
	return e.text, true, nil
}

func (m *MemoryStore) Set(_ context.Context, id, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, k)
		}
	}
	m.entries[id] = entry{text: text, expires: now.Add(m.ttl)}
	return nil
}

// Len returns the number of stored entries, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MemoryStore) Close() error { return nil }

// --- Redis ---

// RedisStore keeps sessions in Redis under prefix+id with a TTL, so several
// server replicas can share them.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to url and pings the server.
func NewRedisStore(ctx context.Context, url, prefix string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opts.Protocol = 2

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (string, bool, error) {
	text, err := r.client.Get(ctx, r.prefix+id).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return text, true, nil
}

func (r *RedisStore) Set(ctx context.Context, id, text string) error {
	if err := r.client.Set(ctx, r.prefix+id, text, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
