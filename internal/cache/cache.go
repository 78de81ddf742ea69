// Package cache implements the query cache behind the catalog: keyed
// entries with a staleness window, per-key coalescing of in-flight
// fetches, prefix invalidation and invalidation subscriptions.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const defaultStaleAfter = 30 * time.Second

// FetchFunc loads the value for a key from the backend
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value     any
	fetchedAt time.Time
}

// Cache is an explicitly constructed query cache with a defined
// lifecycle: created at app start, cleared on logout. At most one fetch
// is in flight per key; concurrent callers share the result.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	gens    map[string]uint64
	subs    map[int]*subscription
	nextSub int

	staleAfter time.Duration
	group      singleflight.Group
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Cache
type Option func(*Cache)

// WithStaleAfter overrides the staleness window
func WithStaleAfter(d time.Duration) Option {
	return func(c *Cache) { c.staleAfter = d }
}

// WithClock overrides the time source (tests)
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty cache
func New(logger *slog.Logger, opts ...Option) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{
		entries:    make(map[string]entry),
		gens:       make(map[string]uint64),
		subs:       make(map[int]*subscription),
		staleAfter: defaultStaleAfter,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the cached value for key if it is within the staleness
// window, otherwise loads it via fn and stores the result. Concurrent
// calls for the same key are coalesced into a single fn invocation.
func (c *Cache) Fetch(ctx context.Context, key string, fn FetchFunc) (any, error) {
	if v, ok := c.fresh(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check under the flight: a concurrent caller may have
		// populated the entry between the miss and the Do.
		if v, ok := c.fresh(key); ok {
			return v, nil
		}

		// Record the key's invalidation generation before fetching.
		// The map write makes the in-flight key visible to Invalidate.
		c.mu.Lock()
		start := c.gens[key]
		c.gens[key] = start
		c.mu.Unlock()

		// An in-flight fetch is shared with other subscribers; one
		// caller going away must not cancel it for the rest.
		v, err := fn(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		// An invalidation that landed mid-flight bumped the
		// generation; the result predates the mutation, so it is
		// served to the waiting callers but never stored as fresh.
		c.mu.Lock()
		if c.gens[key] == start {
			c.entries[key] = entry{value: v, fetchedAt: c.now()}
		}
		c.mu.Unlock()

		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Peek returns the cached value for key regardless of staleness,
// without triggering a fetch.
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Invalidate removes every entry whose key matches one of the given
// prefixes and notifies subscribers. The next Fetch on a removed key
// goes back to the backend. In-flight fetches for matching keys are
// outdated by the bumped generation and forgotten, so their results
// are never stored as fresh.
func (c *Cache) Invalidate(prefixes ...string) {
	var removed []string
	var outdated []string

	c.mu.Lock()
	for key := range c.entries {
		for _, prefix := range prefixes {
			if matchesPrefix(key, prefix) {
				delete(c.entries, key)
				removed = append(removed, key)
				break
			}
		}
	}
	for key := range c.gens {
		for _, prefix := range prefixes {
			if matchesPrefix(key, prefix) {
				c.gens[key]++
				outdated = append(outdated, key)
				break
			}
		}
	}
	c.mu.Unlock()

	for _, key := range outdated {
		c.group.Forget(key)
	}

	c.notify(prefixes)
	c.logger.Debug("cache invalidated", "prefixes", prefixes, "removed", len(removed))
}

// Clear drops all entries (logout)
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	for key := range c.gens {
		c.gens[key]++
	}
	keys := make([]string, 0, len(c.gens))
	for key := range c.gens {
		keys = append(keys, key)
	}
	c.mu.Unlock()

	for _, key := range keys {
		c.group.Forget(key)
	}
	c.logger.Debug("cache cleared")
}

// Len returns the number of live entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) fresh(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.staleAfter > 0 && c.now().Sub(e.fetchedAt) > c.staleAfter {
		return nil, false
	}
	return e.value, true
}

// matchesPrefix reports whether key is addressed by prefix. A bare key
// ("blogPosts") matches only itself and its parameterized children
// ("blogPosts:..."), never a longer sibling ("blogPostsDraft").
func matchesPrefix(key, prefix string) bool {
	if key == prefix {
		return true
	}
	if strings.HasSuffix(prefix, ":") {
		return strings.HasPrefix(key, prefix)
	}
	return strings.HasPrefix(key, prefix+":")
}
