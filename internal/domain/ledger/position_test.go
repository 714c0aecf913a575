package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestock/backend/internal/domain/register"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func day(s string) time.Time {
	t, err := time.Parse(register.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregate(t *testing.T) {
	t.Run("folds all movement kinds into one position", func(t *testing.T) {
		m := Movements{
			Inward: []register.InwardRecord{
				{Date: day("2026-03-01"), MaterialName: "Steel", Grade: "12mm", Quantity: d("100"), Unit: "Kg", Rate: d("60")},
			},
			Outward: []register.OutwardRecord{
				{Date: day("2026-03-02"), MaterialName: "Steel", Grade: "12mm", Quantity: d("40")},
			},
			Returns: []register.ReturnRecord{
				{Date: day("2026-03-03"), MaterialName: "Steel", Grade: "12mm", Quantity: d("5")},
			},
			Damage: []register.DamageRecord{
				{Date: day("2026-03-03"), MaterialName: "Steel", Grade: "12mm", Quantity: d("2")},
			},
			Transfers: []register.TransferRecord{
				{TransferNo: "TRF1", Date: day("2026-03-04"), MaterialName: "Steel", Grade: "12mm", Quantity: d("3")},
			},
		}

		positions := Aggregate(m)
		require.Len(t, positions, 1)

		p := positions[register.NewMaterialKey("Steel", "12mm")]
		require.NotNil(t, p)
		assert.Equal(t, "Kg", p.Unit)
		assert.True(t, p.CurrentStock.Equal(d("60")), "current stock = 100+5-40-2-3, got %s", p.CurrentStock)
		assert.True(t, p.AvgRate.Equal(d("60")))
		assert.True(t, p.StockValue.Equal(d("3600")))
	})

	t.Run("weighted average rate over inward entries only", func(t *testing.T) {
		m := Movements{
			Inward: []register.InwardRecord{
				{Date: day("2026-03-01"), MaterialName: "Cement", Quantity: d("10"), Unit: "Bag", Rate: d("400")},
				{Date: day("2026-03-02"), MaterialName: "Cement", Quantity: d("30"), Unit: "Bag", Rate: d("360")},
			},
		}

		p := Aggregate(m)[register.NewMaterialKey("Cement", "")]
		require.NotNil(t, p)
		// (10*400 + 30*360) / 40 = 370
		assert.True(t, p.AvgRate.Equal(d("370")), "got %s", p.AvgRate)
	})

	t.Run("key with no inward goes negative with default unit and zero rate", func(t *testing.T) {
		m := Movements{
			Outward: []register.OutwardRecord{
				{Date: day("2026-03-01"), MaterialName: "Sand", Quantity: d("12")},
			},
		}

		p := Aggregate(m)[register.NewMaterialKey("Sand", "")]
		require.NotNil(t, p)
		assert.Equal(t, register.DefaultUnit, p.Unit)
		assert.True(t, p.CurrentStock.Equal(d("-12")))
		assert.True(t, p.AvgRate.IsZero())
		assert.True(t, p.StockValue.IsZero())
	})

	t.Run("unit comes from the first inward entry that carries one", func(t *testing.T) {
		m := Movements{
			Inward: []register.InwardRecord{
				{Date: day("2026-03-01"), MaterialName: "Wire", Quantity: d("5"), Unit: "", Rate: d("20")},
				{Date: day("2026-03-02"), MaterialName: "Wire", Quantity: d("5"), Unit: "Meter", Rate: d("20")},
			},
		}

		p := Aggregate(m)[register.NewMaterialKey("Wire", "")]
		require.NotNil(t, p)
		assert.Equal(t, "Meter", p.Unit)
	})

	t.Run("material keys are trimmed so padded names collapse", func(t *testing.T) {
		m := Movements{
			Inward: []register.InwardRecord{
				{Date: day("2026-03-01"), MaterialName: " Steel ", Grade: "8mm", Quantity: d("10"), Rate: d("50")},
				{Date: day("2026-03-01"), MaterialName: "Steel", Grade: "8mm ", Quantity: d("10"), Rate: d("50")},
			},
		}

		positions := Aggregate(m)
		require.Len(t, positions, 1)
		p := positions[register.NewMaterialKey("Steel", "8mm")]
		require.NotNil(t, p)
		assert.True(t, p.TotalInward.Equal(d("20")))
	})
}

func TestSorted(t *testing.T) {
	positions := map[register.MaterialKey]*StockPosition{
		register.NewMaterialKey("Steel", "8mm"):  {Key: register.NewMaterialKey("Steel", "8mm")},
		register.NewMaterialKey("Cement", ""):    {Key: register.NewMaterialKey("Cement", "")},
		register.NewMaterialKey("Steel", "12mm"): {Key: register.NewMaterialKey("Steel", "12mm")},
	}

	sorted := Sorted(positions)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Cement", sorted[0].Key.MaterialName)
	assert.Equal(t, "12mm", sorted[1].Key.Grade)
	assert.Equal(t, "8mm", sorted[2].Key.Grade)
}
