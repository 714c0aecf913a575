package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/infrastructure/sheets"
)

func newClosingService(store register.RowStore) *ClosingService {
	stockSvc := NewStockService(store, zap.NewNop())
	return NewClosingService(store, stockSvc, zap.NewNop())
}

func TestClosingGenerate(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	seedMovements(t, store)
	svc := newClosingService(store)

	records, err := svc.Generate(ctx, day("2026-07-06"))
	require.NoError(t, err)
	require.Len(t, records, 2, "every ledger key gets a line")

	steel := records[1]
	assert.Equal(t, "Steel", steel.MaterialName)
	assert.True(t, steel.Closing.Equal(d("30")))
	assert.True(t, steel.Issued.Equal(d("120")))
	assert.True(t, steel.Opening.Equal(d("150")), "got %s", steel.Opening)
}

func TestClosingSave(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	seedMovements(t, store)
	svc := newClosingService(store)

	_, err := svc.Save(ctx, day("2026-07-06"))
	require.NoError(t, err)

	saved, err := svc.List(ctx, "2026-07-06")
	require.NoError(t, err)
	require.Len(t, saved, 2)

	t.Run("saving the same date again replaces its rows", func(t *testing.T) {
		_, err := svc.Save(ctx, day("2026-07-06"))
		require.NoError(t, err)

		saved, err := svc.List(ctx, "2026-07-06")
		require.NoError(t, err)
		assert.Len(t, saved, 2, "no duplicates after a re-save")
	})

	t.Run("other dates are carried over", func(t *testing.T) {
		_, err := svc.Save(ctx, day("2026-07-07"))
		require.NoError(t, err)

		all, err := svc.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 4)

		firstDay, err := svc.List(ctx, "2026-07-06")
		require.NoError(t, err)
		assert.Len(t, firstDay, 2)
	})
}
