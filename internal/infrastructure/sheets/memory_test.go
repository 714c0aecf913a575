package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestock/backend/internal/domain/register"
)

func TestMemoryStoreAppendAndRead(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rows, err := store.ReadAll(ctx, register.RegisterVendor)
	require.NoError(t, err)
	assert.Empty(t, rows, "fresh register has no data rows")

	require.NoError(t, store.Append(ctx, register.RegisterVendor, []string{"Acme Traders", "Steel"}))
	require.NoError(t, store.AppendAll(ctx, register.RegisterVendor, [][]string{
		{"Bharat Steels"},
		{"Coastal Cement"},
	}))

	rows, err = store.ReadAll(ctx, register.RegisterVendor)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Acme Traders", rows[0][0])
	assert.Equal(t, "Coastal Cement", rows[2][0])
}

func TestMemoryStoreReadAllReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Append(ctx, register.RegisterVendor, []string{"Acme Traders"}))

	rows, err := store.ReadAll(ctx, register.RegisterVendor)
	require.NoError(t, err)
	rows[0][0] = "mutated"

	again, err := store.ReadAll(ctx, register.RegisterVendor)
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", again[0][0], "caller mutations must not leak into the store")
}

func TestMemoryStoreUpdateCell(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Append(ctx, register.RegisterIndent,
		[]string{"IND1", "2026-08-01", "Steel", "12mm", "100", "Kg", "slab", "Ravi", "Pending"}))

	t.Run("updates the addressed column", func(t *testing.T) {
		require.NoError(t, store.UpdateCell(ctx, register.RegisterIndent, 0, "Status", "Approved"))
		rows, err := store.ReadAll(ctx, register.RegisterIndent)
		require.NoError(t, err)
		assert.Equal(t, "Approved", rows[0][8])
	})

	t.Run("pads short rows out to the column", func(t *testing.T) {
		require.NoError(t, store.Append(ctx, register.RegisterIndent, []string{"IND2", "2026-08-02"}))
		require.NoError(t, store.UpdateCell(ctx, register.RegisterIndent, 1, "Status", "Rejected"))
		rows, err := store.ReadAll(ctx, register.RegisterIndent)
		require.NoError(t, err)
		require.Len(t, rows[1], 9)
		assert.Equal(t, "Rejected", rows[1][8])
	})

	t.Run("unknown column fails", func(t *testing.T) {
		err := store.UpdateCell(ctx, register.RegisterIndent, 0, "No Such Column", "x")
		assert.Error(t, err)
	})

	t.Run("out-of-range row fails", func(t *testing.T) {
		err := store.UpdateCell(ctx, register.RegisterIndent, 99, "Status", "Issued")
		assert.Error(t, err)
	})
}

func TestMemoryStoreRewrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.AppendAll(ctx, register.RegisterSnapshot, [][]string{{"old"}}))

	require.NoError(t, store.Rewrite(ctx, register.RegisterSnapshot, [][]string{
		{"Cement", "", "Bag"},
		{"Steel", "12mm", "Kg"},
	}))

	rows, err := store.ReadAll(ctx, register.RegisterSnapshot)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cement", rows[0][0])
}

func TestMemoryStoreDeleteRow(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.AppendAll(ctx, register.RegisterVendor, [][]string{
		{"Acme Traders"},
		{"Bharat Steels"},
	}))

	require.NoError(t, store.DeleteRow(ctx, register.RegisterVendor, 0))
	rows, err := store.ReadAll(ctx, register.RegisterVendor)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bharat Steels", rows[0][0])

	assert.Error(t, store.DeleteRow(ctx, register.RegisterVendor, 5))
}
