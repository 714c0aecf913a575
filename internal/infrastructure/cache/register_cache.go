package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
)

// RowSource produces the rows of a register, typically backed by the
// spreadsheet client.
type RowSource interface {
	ReadAll(ctx context.Context, reg register.Register) ([][]string, error)
}

// RegisterCache memoizes register reads with a per-register TTL. Reads
// within the TTL window serve the cached rows; any write to a register must
// invalidate that register only, leaving the others warm.
type RegisterCache struct {
	source  RowSource
	entries sync.Map // map[register.Register]*cacheEntry
	ttls    map[register.Register]time.Duration
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time

	// Stats for monitoring
	hits   int64
	misses int64
}

// cacheEntry wraps cached rows with their expiration time
type cacheEntry struct {
	rows      [][]string
	expiresAt time.Time
}

// RegisterCacheOption is a functional option for configuring the cache
type RegisterCacheOption func(*RegisterCache)

// WithTTL sets the default TTL for registers without an override.
func WithTTL(ttl time.Duration) RegisterCacheOption {
	return func(c *RegisterCache) {
		c.ttl = ttl
	}
}

// WithRegisterTTL overrides the TTL of a single register.
func WithRegisterTTL(reg register.Register, ttl time.Duration) RegisterCacheOption {
	return func(c *RegisterCache) {
		c.ttls[reg] = ttl
	}
}

// WithLogger sets the logger for the cache
func WithLogger(logger *zap.Logger) RegisterCacheOption {
	return func(c *RegisterCache) {
		c.logger = logger
	}
}

// withClock substitutes the wall clock, for tests.
func withClock(now func() time.Time) RegisterCacheOption {
	return func(c *RegisterCache) {
		c.now = now
	}
}

// NewRegisterCache creates a read-through cache in front of the given source.
func NewRegisterCache(source RowSource, opts ...RegisterCacheOption) *RegisterCache {
	c := &RegisterCache{
		source: source,
		ttls:   make(map[register.Register]time.Duration),
		ttl:    2 * time.Minute,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ttlFor returns the TTL configured for the register.
func (c *RegisterCache) ttlFor(reg register.Register) time.Duration {
	if ttl, ok := c.ttls[reg]; ok {
		return ttl
	}
	return c.ttl
}

// ReadAll returns the register's rows, serving from cache while the entry
// is fresh and falling through to the source otherwise.
func (c *RegisterCache) ReadAll(ctx context.Context, reg register.Register) ([][]string, error) {
	if value, ok := c.entries.Load(reg); ok {
		entry := value.(*cacheEntry)
		if c.now().Before(entry.expiresAt) {
			atomic.AddInt64(&c.hits, 1)
			c.logger.Debug("register cache hit", zap.String("register", string(reg)))
			return entry.rows, nil
		}
		c.entries.Delete(reg)
	}

	atomic.AddInt64(&c.misses, 1)
	c.logger.Debug("register cache miss", zap.String("register", string(reg)))

	rows, err := c.source.ReadAll(ctx, reg)
	if err != nil {
		return nil, err
	}

	c.entries.Store(reg, &cacheEntry{
		rows:      rows,
		expiresAt: c.now().Add(c.ttlFor(reg)),
	})
	return rows, nil
}

// Invalidate drops the cached rows of one register.
func (c *RegisterCache) Invalidate(reg register.Register) {
	c.entries.Delete(reg)
	c.logger.Debug("register cache invalidated", zap.String("register", string(reg)))
}

// InvalidateAll drops every cached register.
func (c *RegisterCache) InvalidateAll() {
	c.entries.Range(func(key, _ any) bool {
		c.entries.Delete(key)
		return true
	})
	c.logger.Info("register cache cleared")
}

// Stats returns hit and miss counters.
func (c *RegisterCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}
