// Package query caches read results by key and applies the retry policy of
// the admin UI: reads retry transient failures, mutations run once and
// invalidate the keys they affect.
package query

import (
	"context"
	"strings"
	"time"

	"github.com/aliefadha/tekiro-cms/client/internal/errors"
	backoff "github.com/cenkalti/backoff/v4"
	cache "github.com/patrickmn/go-cache"
)

// Defaults used by New.
const (
	DefaultStaleTime   = 5 * time.Minute
	DefaultRetries     = 2
	DefaultBaseBackoff = time.Second
	DefaultMaxInterval = 30 * time.Second
)

// keySep joins key parts; it cannot appear in ids or resource names.
const keySep = "\x1f"

// Cache holds fetched values until they go stale. Safe for concurrent use.
// Cached values are shared between callers; see Fetch.
type Cache struct {
	items       *cache.Cache
	staleTime   time.Duration
	retries     int
	baseBackoff time.Duration
	maxInterval time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithStaleTime sets how long a fetched value is served from cache. Values
// <= 0 keep the default.
func WithStaleTime(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.staleTime = d
		}
	}
}

// WithRetries sets how many times a failed fetch is retried. Negative values
// are treated as zero.
func WithRetries(n int) Option {
	return func(c *Cache) {
		if n < 0 {
			n = 0
		}
		c.retries = n
	}
}

// WithBackoff sets the first retry delay and the cap on later ones.
func WithBackoff(base, max time.Duration) Option {
	return func(c *Cache) {
		if base > 0 {
			c.baseBackoff = base
		}
		if max > 0 {
			c.maxInterval = max
		}
	}
}

// New returns an empty Cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		staleTime:   DefaultStaleTime,
		retries:     DefaultRetries,
		baseBackoff: DefaultBaseBackoff,
		maxInterval: DefaultMaxInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.items = cache.New(c.staleTime, 2*c.staleTime)
	return c
}

// Key builds a cache key from its parts, e.g. Key("gallery", "web").
func Key(parts ...string) []string { return parts }

func encode(key []string) string { return strings.Join(key, keySep) }

// Fetch returns the cached value for key when it is fresh. Otherwise it runs
// fn, retrying transient failures, and caches a successful result. Errors
// with a 4xx status are returned immediately.
//
// The cache stores the value fn returned, not a copy. Pointers, slices and
// maps handed out by Fetch are shared with later hits for the same key and
// must be treated as read-only; copy before modifying.
func Fetch[T any](ctx context.Context, c *Cache, key []string, fn func(context.Context) (T, error)) (T, error) {
	k := encode(key)
	if v, ok := c.items.Get(k); ok {
		if typed, ok := v.(T); ok {
			cacheHitsTotal.Inc()
			return typed, nil
		}
	}
	cacheMissesTotal.Inc()

	v, err := retry(ctx, c, fn)
	if err != nil {
		var zero T
		return zero, err
	}
	c.items.SetDefault(k, v)
	return v, nil
}

// Mutate runs fn once and, when it succeeds, invalidates every cached key
// starting with one of the given prefixes.
func Mutate[T any](ctx context.Context, c *Cache, fn func(context.Context) (T, error), invalidate ...[]string) (T, error) {
	v, err := fn(ctx)
	if err != nil {
		return v, err
	}
	for _, prefix := range invalidate {
		c.Invalidate(prefix...)
	}
	return v, nil
}

// Invalidate drops every key whose leading parts equal prefix. No parts
// drops everything.
func (c *Cache) Invalidate(prefix ...string) {
	if len(prefix) == 0 {
		c.items.Flush()
		return
	}
	p := encode(prefix)
	for k := range c.items.Items() {
		if k == p || strings.HasPrefix(k, p+keySep) {
			c.items.Delete(k)
		}
	}
}

// Len is the number of fresh entries.
func (c *Cache) Len() int { return len(c.items.Items()) }

func retry[T any](ctx context.Context, c *Cache, fn func(context.Context) (T, error)) (T, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.baseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = c.maxInterval
	exp.MaxElapsedTime = 0
	exp.Reset()
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.retries)), ctx)

	var out T
	op := func() error {
		v, err := fn(ctx)
		if err == nil {
			out = v
			return nil
		}
		if errors.IsIrrecoverable(err) || ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(error, time.Duration) { retriesTotal.Inc() }
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
