// Package cache holds the console's copy of each remote collection. A cache
// is only ever replaced wholesale from the remote store, never patched.
package cache

import (
	"context"
	"sync"
	"time"
)

// Refreshable is what the periodic refresher drives.
type Refreshable interface {
	Name() string
	Refresh(ctx context.Context) error
}

type Cache[T any] struct {
	name  string
	fetch func(ctx context.Context) ([]T, error)

	mu          sync.Mutex
	items       []T
	lastRefresh time.Time
	lastErr     error
	inflight    chan struct{}
}

func New[T any](name string, fetch func(ctx context.Context) ([]T, error)) *Cache[T] {
	return &Cache[T]{name: name, fetch: fetch}
}

func (c *Cache[T]) Name() string { return c.name }

// Refresh fetches the full collection and replaces the contents. On failure
// the prior contents are kept and the error is recorded for LastErr. Calls
// that overlap an in-flight refresh do not issue a second fetch; they wait
// for the running one and share its result.
func (c *Cache[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if ch := c.inflight; ch != nil {
		c.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
		c.mu.Lock()
		err := c.lastErr
		c.mu.Unlock()
		return err
	}
	ch := make(chan struct{})
	c.inflight = ch
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	if err == nil {
		c.items = items
		c.lastRefresh = time.Now()
	}
	c.lastErr = err
	c.inflight = nil
	c.mu.Unlock()
	close(ch)

	return err
}

// Snapshot returns a copy of the cached collection in source order.
func (c *Cache[T]) Snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cache[T]) LastRefresh() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRefresh
}

// LastErr reports the outcome of the most recent refresh, so callers can
// show an explicit error state instead of silently stale data.
func (c *Cache[T]) LastErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
