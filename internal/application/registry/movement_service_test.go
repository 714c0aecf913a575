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

func newMovementService() *MovementService {
	return NewMovementService(sheets.NewMemoryStore(), zap.NewNop())
}

func TestAddInward(t *testing.T) {
	ctx := context.Background()
	svc := newMovementService()

	t.Run("derives the amount from quantity and rate", func(t *testing.T) {
		got, err := svc.AddInward(ctx, register.InwardRecord{
			Date:         day("2026-08-01"),
			MaterialName: "Steel",
			Grade:        "12mm",
			Quantity:     d("100"),
			Unit:         "Kg",
			Rate:         d("61.505"),
			Amount:       d("999999"), // caller-supplied amount is ignored
		})
		require.NoError(t, err)
		assert.True(t, got.Amount.Equal(d("6150.5")), "got %s", got.Amount)
	})

	t.Run("defaults a zero date to today", func(t *testing.T) {
		svc.now = func() time.Time { return day("2026-08-15") }
		got, err := svc.AddInward(ctx, register.InwardRecord{
			MaterialName: "Cement",
			Quantity:     d("10"),
			Rate:         d("380"),
		})
		require.NoError(t, err)
		assert.Equal(t, day("2026-08-15"), got.Date)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := svc.AddInward(ctx, register.InwardRecord{MaterialName: "Steel", Quantity: d("0")})
		assertDomainCode(t, err, "INVALID_INPUT")
	})

	t.Run("rejects a negative rate", func(t *testing.T) {
		_, err := svc.AddInward(ctx, register.InwardRecord{MaterialName: "Steel", Quantity: d("1"), Rate: d("-5")})
		assertDomainCode(t, err, "INVALID_INPUT")
	})

	t.Run("rejects a blank material", func(t *testing.T) {
		_, err := svc.AddInward(ctx, register.InwardRecord{MaterialName: "  ", Quantity: d("1")})
		assertDomainCode(t, err, "INVALID_INPUT")
	})
}

func TestListInwardFilters(t *testing.T) {
	ctx := context.Background()
	svc := newMovementService()

	seed := []register.InwardRecord{
		{Date: day("2026-08-01"), MaterialName: "Steel", Grade: "12mm", Vendor: "Acme", Quantity: d("100"), Rate: d("60")},
		{Date: day("2026-08-01"), MaterialName: "Cement", Vendor: "Bharat", Quantity: d("50"), Rate: d("380")},
		{Date: day("2026-08-02"), MaterialName: "Steel", Grade: "8mm", Vendor: "Acme", Quantity: d("40"), Rate: d("58")},
	}
	for _, rec := range seed {
		_, err := svc.AddInward(ctx, rec)
		require.NoError(t, err)
	}

	t.Run("no filter returns everything", func(t *testing.T) {
		got, err := svc.ListInward(ctx, MovementFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("filters by date", func(t *testing.T) {
		got, err := svc.ListInward(ctx, MovementFilter{Date: "2026-08-01"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("filters compose", func(t *testing.T) {
		got, err := svc.ListInward(ctx, MovementFilter{Material: "steel", Grade: "8MM", Vendor: "acme"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, day("2026-08-02"), got[0].Date)
	})
}

func TestAddOutwardAndReturnsAndDamage(t *testing.T) {
	ctx := context.Background()
	svc := newMovementService()

	_, err := svc.AddOutward(ctx, register.OutwardRecord{
		Date: day("2026-08-01"), MaterialName: "Steel", Grade: "12mm",
		Quantity: d("30"), IssuedTo: "Slab team", Purpose: "Second floor slab",
	})
	require.NoError(t, err)

	_, err = svc.AddReturn(ctx, register.ReturnRecord{
		Date: day("2026-08-02"), MaterialName: "Steel", Grade: "12mm",
		Quantity: d("5"), ReturnedBy: "Slab team",
	})
	require.NoError(t, err)

	_, err = svc.AddDamage(ctx, register.DamageRecord{
		Date: day("2026-08-02"), MaterialName: "Steel", Grade: "12mm",
		Quantity: d("2"), Reason: "Bent during handling",
	})
	require.NoError(t, err)

	outward, err := svc.ListOutward(ctx, MovementFilter{Material: "Steel"})
	require.NoError(t, err)
	require.Len(t, outward, 1)
	assert.Equal(t, "Slab team", outward[0].IssuedTo)

	returns, err := svc.ListReturns(ctx, MovementFilter{})
	require.NoError(t, err)
	assert.Len(t, returns, 1)

	damage, err := svc.ListDamage(ctx, MovementFilter{Date: "2026-08-02"})
	require.NoError(t, err)
	require.Len(t, damage, 1)
	assert.Equal(t, "Bent during handling", damage[0].Reason)

	t.Run("outward quantity must be positive", func(t *testing.T) {
		_, err := svc.AddOutward(ctx, register.OutwardRecord{MaterialName: "Steel", Quantity: d("-1")})
		assertDomainCode(t, err, "INVALID_INPUT")
	})
}
