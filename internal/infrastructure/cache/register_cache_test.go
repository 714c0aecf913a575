package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/infrastructure/sheets"
)

// countingSource tracks how often each register is read from the backend.
type countingSource struct {
	reads map[register.Register]int
	rows  map[register.Register][][]string
}

func newCountingSource() *countingSource {
	return &countingSource{
		reads: make(map[register.Register]int),
		rows:  make(map[register.Register][][]string),
	}
}

func (s *countingSource) ReadAll(_ context.Context, reg register.Register) ([][]string, error) {
	s.reads[reg]++
	return s.rows[reg], nil
}

func TestRegisterCacheReadThrough(t *testing.T) {
	ctx := context.Background()
	source := newCountingSource()
	source.rows[register.RegisterVendor] = [][]string{{"Acme Traders"}}

	c := NewRegisterCache(source, WithTTL(time.Minute))

	first, err := c.ReadAll(ctx, register.RegisterVendor)
	require.NoError(t, err)
	second, err := c.ReadAll(ctx, register.RegisterVendor)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.reads[register.RegisterVendor], "second read is served from cache")

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestRegisterCacheTTLExpiry(t *testing.T) {
	ctx := context.Background()
	source := newCountingSource()

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c := NewRegisterCache(source,
		WithTTL(time.Minute),
		withClock(func() time.Time { return now }),
	)

	_, err := c.ReadAll(ctx, register.RegisterInward)
	require.NoError(t, err)
	_, err = c.ReadAll(ctx, register.RegisterInward)
	require.NoError(t, err)
	assert.Equal(t, 1, source.reads[register.RegisterInward])

	now = now.Add(61 * time.Second)
	_, err = c.ReadAll(ctx, register.RegisterInward)
	require.NoError(t, err)
	assert.Equal(t, 2, source.reads[register.RegisterInward], "expired entry falls through")
}

func TestRegisterCachePerRegisterTTL(t *testing.T) {
	ctx := context.Background()
	source := newCountingSource()

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	c := NewRegisterCache(source,
		WithTTL(10*time.Minute),
		WithRegisterTTL(register.RegisterInward, 30*time.Second),
		withClock(func() time.Time { return now }),
	)

	_, _ = c.ReadAll(ctx, register.RegisterInward)
	_, _ = c.ReadAll(ctx, register.RegisterVendor)

	now = now.Add(time.Minute)
	_, _ = c.ReadAll(ctx, register.RegisterInward)
	_, _ = c.ReadAll(ctx, register.RegisterVendor)

	assert.Equal(t, 2, source.reads[register.RegisterInward], "short override expired")
	assert.Equal(t, 1, source.reads[register.RegisterVendor], "default TTL still fresh")
}

func TestRegisterCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	source := newCountingSource()
	c := NewRegisterCache(source, WithTTL(time.Hour))

	_, _ = c.ReadAll(ctx, register.RegisterInward)
	_, _ = c.ReadAll(ctx, register.RegisterVendor)

	c.Invalidate(register.RegisterInward)

	_, _ = c.ReadAll(ctx, register.RegisterInward)
	_, _ = c.ReadAll(ctx, register.RegisterVendor)

	assert.Equal(t, 2, source.reads[register.RegisterInward])
	assert.Equal(t, 1, source.reads[register.RegisterVendor], "other registers stay warm")

	c.InvalidateAll()
	_, _ = c.ReadAll(ctx, register.RegisterVendor)
	assert.Equal(t, 2, source.reads[register.RegisterVendor])
}

func TestCachedStoreWriteInvalidation(t *testing.T) {
	ctx := context.Background()
	backing := sheets.NewMemoryStore()
	c := NewRegisterCache(backing, WithTTL(time.Hour))
	store := NewCachedStore(backing, c)

	require.NoError(t, store.Append(ctx, register.RegisterVendor,
		register.VendorRecord{VendorName: "Acme Traders"}.Row()))

	rows, err := store.ReadAll(ctx, register.RegisterVendor)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// A write through the decorator must be visible on the next read even
	// though the previous read populated the cache.
	require.NoError(t, store.Append(ctx, register.RegisterVendor,
		register.VendorRecord{VendorName: "Bharat Steels"}.Row()))

	rows, err = store.ReadAll(ctx, register.RegisterVendor)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// Writes to one register leave the others cached.
	_, err = store.ReadAll(ctx, register.RegisterInward)
	require.NoError(t, err)
	hitsBefore, _ := c.Stats()
	require.NoError(t, store.Append(ctx, register.RegisterVendor,
		register.VendorRecord{VendorName: "Coastal Cement"}.Row()))
	_, err = store.ReadAll(ctx, register.RegisterInward)
	require.NoError(t, err)
	hitsAfter, _ := c.Stats()
	assert.Equal(t, hitsBefore+1, hitsAfter, "inward register served from cache")
}
