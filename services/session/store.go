package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const lastLocationPrefix = "chat:loc:"

// Store remembers the last resolved location per chat session. That label
// is the only cross-request state the assistant keeps.
type Store interface {
	LastLocation(ctx context.Context, sessionID string) (string, error)
	SetLastLocation(ctx context.Context, sessionID, label string) error
}

// RedisStore keeps session state in Redis with a TTL so stale sessions
// expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) LastLocation(ctx context.Context, sessionID string) (string, error) {
	label, err := s.client.Get(ctx, lastLocationPrefix+sessionID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return label, nil
}

func (s *RedisStore) SetLastLocation(ctx context.Context, sessionID, label string) error {
	return s.client.Set(ctx, lastLocationPrefix+sessionID, label, s.ttl).Err()
}

type memoryEntry struct {
	label     string
	expiresAt time.Time
}

// MemoryStore is the in-process fallback used when Redis is not
// configured, and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) LastLocation(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, found := s.entries[sessionID]
	if !found || time.Now().After(entry.expiresAt) {
		return "", nil
	}
	return entry.label, nil
}

func (s *MemoryStore) SetLastLocation(_ context.Context, sessionID, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = memoryEntry{label: label, expiresAt: time.Now().Add(s.ttl)}
	return nil
}
