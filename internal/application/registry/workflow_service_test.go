package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/infrastructure/sheets"
)

func newWorkflowService(store register.RowStore) *WorkflowService {
	svc := NewWorkflowService(store, zap.NewNop())
	clock := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc
}

func TestCreateIndent(t *testing.T) {
	ctx := context.Background()
	svc := newWorkflowService(sheets.NewMemoryStore())

	t.Run("assigns a number and pending status", func(t *testing.T) {
		got, err := svc.CreateIndent(ctx, register.IndentRecord{
			MaterialName:     "Steel",
			Grade:            "12mm",
			QuantityIndented: d("100"),
			Unit:             "Kg",
			RequestedBy:      "Ravi",
		})
		require.NoError(t, err)
		assert.Regexp(t, `^IND\d{17}$`, got.IndentNo)
		assert.Equal(t, register.IndentStatusPending, got.Status)
		assert.False(t, got.Date.IsZero())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := svc.CreateIndent(ctx, register.IndentRecord{MaterialName: "Steel", QuantityIndented: d("0")})
		assertDomainCode(t, err, "INVALID_INPUT")
	})
}

func TestUpdateIndentStatus(t *testing.T) {
	ctx := context.Background()
	store := sheets.NewMemoryStore()
	svc := newWorkflowService(store)

	first, err := svc.CreateIndent(ctx, register.IndentRecord{MaterialName: "Steel", QuantityIndented: d("10")})
	require.NoError(t, err)
	second, err := svc.CreateIndent(ctx, register.IndentRecord{MaterialName: "Cement", QuantityIndented: d("20")})
	require.NoError(t, err)

	t.Run("rejects an unknown status", func(t *testing.T) {
		assertDomainCode(t, svc.UpdateIndentStatus(ctx, first.IndentNo, "Cancelled"), "INVALID_INPUT")
	})

	t.Run("unknown number is not found", func(t *testing.T) {
		assertDomainCode(t, svc.UpdateIndentStatus(ctx, "IND00000000000000", register.IndentStatusApproved), "NOT_FOUND")
	})

	t.Run("updates the addressed indent only", func(t *testing.T) {
		require.NoError(t, svc.UpdateIndentStatus(ctx, second.IndentNo, register.IndentStatusApproved))

		pending, err := svc.ListIndents(ctx, register.IndentStatusPending)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, first.IndentNo, pending[0].IndentNo)
	})

	t.Run("still finds the row after an earlier row is deleted", func(t *testing.T) {
		// Removing the first data row shifts every later row up by one;
		// the status update must re-resolve the index from the number.
		require.NoError(t, store.DeleteRow(ctx, register.RegisterIndent, 0))
		require.NoError(t, svc.UpdateIndentStatus(ctx, second.IndentNo, register.IndentStatusIssued))

		issued, err := svc.ListIndents(ctx, register.IndentStatusIssued)
		require.NoError(t, err)
		require.Len(t, issued, 1)
		assert.Equal(t, second.IndentNo, issued[0].IndentNo)
	})
}

func TestCreateTransfer(t *testing.T) {
	ctx := context.Background()
	svc := newWorkflowService(sheets.NewMemoryStore())

	t.Run("requires both locations", func(t *testing.T) {
		_, err := svc.CreateTransfer(ctx, register.TransferRecord{
			MaterialName: "Cement", Quantity: d("25"), FromLocation: "Site A",
		})
		assertDomainCode(t, err, "INVALID_INPUT")
	})

	t.Run("assigns a number and pending status", func(t *testing.T) {
		got, err := svc.CreateTransfer(ctx, register.TransferRecord{
			MaterialName: "Cement", Quantity: d("25"),
			FromLocation: "Site A", ToLocation: "Site B",
		})
		require.NoError(t, err)
		assert.Regexp(t, `^TRF\d{17}$`, got.TransferNo)
		assert.Equal(t, register.TransferStatusPending, got.Status)

		require.NoError(t, svc.UpdateTransferStatus(ctx, got.TransferNo, register.TransferStatusInTransit))
		inTransit, err := svc.ListTransfers(ctx, register.TransferStatusInTransit)
		require.NoError(t, err)
		assert.Len(t, inTransit, 1)
	})
}

func TestCreateScrap(t *testing.T) {
	ctx := context.Background()
	svc := newWorkflowService(sheets.NewMemoryStore())

	t.Run("requires a scrap item", func(t *testing.T) {
		_, err := svc.CreateScrap(ctx, register.ScrapRecord{Quantity: d("5")})
		assertDomainCode(t, err, "INVALID_INPUT")
	})

	t.Run("assigns a number and stored status", func(t *testing.T) {
		got, err := svc.CreateScrap(ctx, register.ScrapRecord{
			ScrapItem: "Steel offcuts", Quantity: d("120"), Unit: "Kg", ScrapValue: d("3600"),
		})
		require.NoError(t, err)
		assert.Regexp(t, `^SCR\d{17}$`, got.ScrapNo)
		assert.Equal(t, register.ScrapStatusStored, got.Status)

		require.NoError(t, svc.UpdateScrapStatus(ctx, got.ScrapNo, register.ScrapStatusSold))
		sold, err := svc.ListScrap(ctx, register.ScrapStatusSold)
		require.NoError(t, err)
		assert.Len(t, sold, 1)
	})
}
