package cache

import (
	"context"

	"github.com/sitestock/backend/internal/domain/register"
)

// CachedStore decorates a RowStore with the register cache. Reads go
// through the cache; every write invalidates its register before returning
// so the next read observes the mutation.
type CachedStore struct {
	store register.RowStore
	cache *RegisterCache
}

// NewCachedStore wraps the store with the cache.
func NewCachedStore(store register.RowStore, cache *RegisterCache) *CachedStore {
	return &CachedStore{store: store, cache: cache}
}

func (s *CachedStore) ReadAll(ctx context.Context, reg register.Register) ([][]string, error) {
	return s.cache.ReadAll(ctx, reg)
}

func (s *CachedStore) Append(ctx context.Context, reg register.Register, row []string) error {
	if err := s.store.Append(ctx, reg, row); err != nil {
		return err
	}
	s.cache.Invalidate(reg)
	return nil
}

func (s *CachedStore) AppendAll(ctx context.Context, reg register.Register, rows [][]string) error {
	if err := s.store.AppendAll(ctx, reg, rows); err != nil {
		return err
	}
	s.cache.Invalidate(reg)
	return nil
}

func (s *CachedStore) UpdateCell(ctx context.Context, reg register.Register, rowIndex int, column, value string) error {
	if err := s.store.UpdateCell(ctx, reg, rowIndex, column, value); err != nil {
		return err
	}
	s.cache.Invalidate(reg)
	return nil
}

func (s *CachedStore) Rewrite(ctx context.Context, reg register.Register, rows [][]string) error {
	if err := s.store.Rewrite(ctx, reg, rows); err != nil {
		return err
	}
	s.cache.Invalidate(reg)
	return nil
}

func (s *CachedStore) DeleteRow(ctx context.Context, reg register.Register, rowIndex int) error {
	if err := s.store.DeleteRow(ctx, reg, rowIndex); err != nil {
		return err
	}
	s.cache.Invalidate(reg)
	return nil
}

var _ register.RowStore = (*CachedStore)(nil)
