// Package session keeps the authenticated-session records for the console.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists raw session records by token. Get returns (nil, nil) for a
// token with no record.
type Store interface {
	Put(ctx context.Context, token string, data []byte, ttl time.Duration) error
	Get(ctx context.Context, token string) ([]byte, error)
	Delete(ctx context.Context, token string) error
}

const redisKeyPrefix = "session:"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, token string, data []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, redisKeyPrefix+token, data, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) ([]byte, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return data, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// MemoryStore is the fallback when redis is not configured. Expired entries
// are dropped lazily on read and by the janitor sweep.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	done    chan struct{}
	once    sync.Once
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), done: make(chan struct{})}
}

func (s *MemoryStore) Put(_ context.Context, token string, data []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{data: data, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, token)
		return nil, nil
	}
	return e.data, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// StartJanitor sweeps expired entries on the given interval until Stop is
// called. Sweeps run back to back on one goroutine, so a slow sweep cannot
// pile up behind the ticker.
func (s *MemoryStore) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.done:
				return
			}
		}
	}()
}

func (s *MemoryStore) Stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryStore) sweep() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
		}
	}
}
