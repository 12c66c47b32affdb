// Package worker runs the periodic cache refresh.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/jhonstore/admin-console/internal/cache"
)

// Refresher reloads every registered cache on a fixed interval. A tick that
// lands while a cache is still refreshing collapses into the in-flight fetch
// instead of piling up, courtesy of the cache's single-flight refresh.
type Refresher struct {
	caches   []cache.Refreshable
	interval time.Duration
	log      *slog.Logger
	done     chan struct{}
}

func NewRefresher(interval time.Duration, log *slog.Logger, caches ...cache.Refreshable) *Refresher {
	return &Refresher{caches: caches, interval: interval, log: log, done: make(chan struct{})}
}

func (r *Refresher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.refreshAll(ctx)
			case <-r.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	r.log.Info("cache refresher started", "interval", r.interval)
}

func (r *Refresher) Stop() { close(r.done) }

// RefreshAll performs one synchronous pass; main uses it for the initial
// warm-up before serving.
func (r *Refresher) RefreshAll(ctx context.Context) {
	r.refreshAll(ctx)
}

func (r *Refresher) refreshAll(ctx context.Context) {
	for _, c := range r.caches {
		if err := c.Refresh(ctx); err != nil {
			r.log.Error("cache refresh failed", "cache", c.Name(), "error", err)
		}
	}
}
