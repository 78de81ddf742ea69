// Package catalog maps every backend operation the UI needs onto the
// query cache: reads go through keyed, coalesced cache entries;
// mutations call the backend exactly once and invalidate the query-key
// prefixes declared in Edges.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"github.com/shoplight/shoplight/internal/cache"
	"github.com/shoplight/shoplight/internal/domain"
)

// Catalog is the typed wrapper over the single shared backend handle.
// Reads degrade to empty defaults (or a persisted snapshot) until the
// handle is Ready; writes reject with domain.ErrBackendUnavailable.
type Catalog struct {
	backend   domain.Backend
	cache     *cache.Cache
	snapshots domain.SnapshotStore
	logger    *slog.Logger
	state     atomic.Int32
}

// Option configures a Catalog
type Option func(*Catalog)

// WithSnapshots persists last-known query results so a restart can show
// stale content while the handle is still connecting
func WithSnapshots(s domain.SnapshotStore) Option {
	return func(c *Catalog) { c.snapshots = s }
}

// New creates a catalog in the Connecting state
func New(backend domain.Backend, qc *cache.Cache, logger *slog.Logger, opts ...Option) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{backend: backend, cache: qc, logger: logger}
	c.state.Store(int32(domain.Connecting))
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetState transitions the backend handle state
func (c *Catalog) SetState(s domain.ConnState) {
	c.state.Store(int32(s))
	c.logger.Info("backend state changed", "state", s.String())
}

// State returns the current backend handle state
func (c *Catalog) State() domain.ConnState {
	return domain.ConnState(c.state.Load())
}

// Cache exposes the underlying query cache for subscriptions
func (c *Catalog) Cache() *cache.Cache {
	return c.cache
}

// Reset clears cached queries and snapshots (logout)
func (c *Catalog) Reset() {
	c.cache.Clear()
	if c.snapshots != nil {
		c.snapshots.Clear()
	}
	c.logger.Info("catalog reset")
}

// query runs a cached read. Not-Ready handles return the persisted
// snapshot if one exists, otherwise the zero value and no error;
// callers must tolerate an empty result during startup.
func query[T any](ctx context.Context, c *Catalog, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if c.State() != domain.Ready {
		if v, ok := snapshot[T](c, key); ok {
			return v, nil
		}
		return zero, nil
	}

	v, err := c.cache.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		res, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.saveSnapshot(key, res)
		return res, nil
	})
	if err != nil {
		c.logger.Error("query failed", "key", key, "error", err)
		return zero, err
	}
	return v.(T), nil
}

// mutate runs a backend write. The write is invoked exactly once; on
// success the mutation's declared edges are invalidated, on failure
// nothing in the cache changes.
func mutate[T any](ctx context.Context, c *Catalog, name string, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	if c.State() != domain.Ready {
		return zero, domain.ErrBackendUnavailable
	}

	v, err := fn(ctx)
	if err != nil {
		c.logger.Error("mutation failed", "mutation", name, "error", err)
		return zero, err
	}

	c.invalidateFor(name)
	return v, nil
}

// mutateVoid wraps mutate for writes with no return value
func mutateVoid(ctx context.Context, c *Catalog, name string, fn func(context.Context) error) error {
	_, err := mutate(ctx, c, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func (c *Catalog) invalidateFor(name string) {
	prefixes, ok := Edges[name]
	if !ok || len(prefixes) == 0 {
		return
	}
	c.cache.Invalidate(prefixes...)
	if c.snapshots != nil {
		for _, prefix := range prefixes {
			c.snapshots.DeleteSnapshots(prefix)
		}
	}
	c.logger.Debug("mutation invalidated queries", "mutation", name, "prefixes", prefixes)
}

func snapshot[T any](c *Catalog, key string) (T, bool) {
	var v T
	if c.snapshots == nil {
		return v, false
	}
	data, ok := c.snapshots.GetSnapshot(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false
	}
	return v, true
}

func (c *Catalog) saveSnapshot(key string, v any) {
	if c.snapshots == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.snapshots.SaveSnapshot(key, data); err != nil {
		c.logger.Warn("failed to persist snapshot", "key", key, "error", err)
	}
}
