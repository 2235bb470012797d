package cache

import (
	"strings"
	"sync"
	"time"
)

// Observer is notified of every lookup with the key's kind (prefix before ':') and whether it hit.
type Observer func(kind string, hit bool)

type entry struct {
	storedAt time.Time
	value    any
}

// Cache is a process-local key/value store with lazy per-key expiry.
// Values are stored with their load time; the TTL is supplied per lookup.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	now      func() time.Time
	observer Observer
}

// Option customizes a Cache.
type Option func(*Cache)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithObserver registers a lookup observer, typically bound to metrics.
func WithObserver(obs Observer) Option {
	return func(c *Cache) {
		c.observer = obs
	}
}

// New constructs an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrLoad returns the value stored under key when it is younger than ttl.
// Otherwise it calls load, stores the result (empty results included) and returns it.
// Load errors are returned as-is and nothing is stored.
//
// The loader runs without holding the lock, so concurrent misses on one key may
// both load; the last store wins.
func GetOrLoad[T any](c *Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if v, ok := lookup[T](c, key, ttl); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	c.store(key, v)
	return v, nil
}

func lookup[T any](c *Cache, key string, ttl time.Duration) (T, bool) {
	var zero T
	c.mu.Lock()
	e, ok := c.entries[key]
	now := c.now()
	c.mu.Unlock()

	hit := ok && now.Sub(e.storedAt) < ttl
	var v T
	if hit {
		// A value stored under the same key with another type is treated as a miss.
		if e.value == nil {
			v = zero
		} else if typed, ok := e.value.(T); ok {
			v = typed
		} else {
			hit = false
		}
	}
	c.observe(key, hit)
	return v, hit
}

func (c *Cache) store(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{storedAt: c.now(), value: v}
}

func (c *Cache) observe(key string, hit bool) {
	if c.observer == nil {
		return
	}
	kind := key
	if i := strings.IndexByte(key, ':'); i > 0 {
		kind = key[:i]
	}
	c.observer(kind, hit)
}

// Len reports the number of stored keys, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
