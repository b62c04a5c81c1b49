package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"butler/internal/adapters/observability"
	"butler/internal/domain"
)

const snapshotKey = "catalog:snapshot"

// CatalogCache owns the process-wide catalog snapshot. A snapshot is served
// while younger than ttl; otherwise a refetch is attempted, falling back to
// the empty default on failure without stamping the entry, so the next call
// retries instead of caching the failure.
//
// The snapshot/timestamp pair is guarded by one mutex so a refresh is never
// partially visible and concurrent callers trigger at most one fetch per
// TTL window.
type CatalogCache struct {
	src   domain.CatalogSource
	store domain.Cache // optional shared tier, may be nil
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	snapshot  domain.CatalogSnapshot
	fetchedAt time.Time
}

func NewCatalogCache(src domain.CatalogSource, store domain.Cache, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = 300 * time.Second
	}
	return &CatalogCache{src: src, store: store, ttl: ttl, now: time.Now}
}

// Get returns the current snapshot. Never errors: fetch failures degrade to
// the empty default snapshot.
func (c *CatalogCache) Get(ctx context.Context) domain.CatalogSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.fetchedAt.IsZero() && now.Sub(c.fetchedAt) < c.ttl {
		observability.ObserveCache("catalog", "hit")
		return c.snapshot
	}
	observability.ObserveCache("catalog", "miss")

	// shared tier first: another replica may have fetched recently
	if c.store != nil {
		var snap domain.CatalogSnapshot
		if ok, err := c.store.Get(ctx, snapshotKey, &snap); err == nil && ok {
			c.snapshot = snap
			c.fetchedAt = now
			return snap
		}
	}

	snap, err := c.src.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog fetch failed, serving empty snapshot")
		c.snapshot = domain.EmptyCatalog()
		// fetchedAt deliberately left stale so the next call retries
		return c.snapshot
	}

	c.snapshot = snap
	c.fetchedAt = now
	if c.store != nil {
		if err := c.store.Set(ctx, snapshotKey, snap, int(c.ttl.Seconds())); err != nil {
			log.Warn().Err(err).Msg("catalog snapshot store write failed")
		}
	}
	return snap
}
