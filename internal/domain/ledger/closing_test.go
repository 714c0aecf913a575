package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestock/backend/internal/domain/register"
)

func TestBuildDailyClosing(t *testing.T) {
	m := Movements{
		Inward: []register.InwardRecord{
			{Date: day("2026-07-01"), MaterialName: "Steel", Grade: "12mm", Quantity: d("100"), Unit: "Kg", Rate: d("60")},
			{Date: day("2026-07-10"), MaterialName: "Steel", Grade: "12mm", Quantity: d("20"), Unit: "Kg", Rate: d("62")},
			{Date: day("2026-07-01"), MaterialName: "Cement", Quantity: d("50"), Unit: "Bag", Rate: d("380")},
		},
		Outward: []register.OutwardRecord{
			{Date: day("2026-07-10"), MaterialName: "Steel", Grade: "12mm", Quantity: d("30")},
		},
		Returns: []register.ReturnRecord{
			{Date: day("2026-07-10"), MaterialName: "Steel", Grade: "12mm", Quantity: d("5")},
		},
		Damage: []register.DamageRecord{
			{Date: day("2026-07-10"), MaterialName: "Steel", Grade: "12mm", Quantity: d("2")},
		},
	}
	positions := Aggregate(m)

	rows := BuildDailyClosing(positions, m, day("2026-07-10"))
	require.Len(t, rows, 2, "every ledger key gets a closing line")

	t.Run("opening is reconstructed by undoing the day's movements", func(t *testing.T) {
		steel := rows[1]
		assert.Equal(t, "Steel", steel.MaterialName)
		// closing 93 = 120 in + 5 ret - 30 out - 2 dmg; opening undoes 2026-07-10
		assert.True(t, steel.Closing.Equal(d("93")), "got %s", steel.Closing)
		assert.True(t, steel.Opening.Equal(d("100")), "got %s", steel.Opening)
		assert.True(t, steel.Received.Equal(d("20")))
		assert.True(t, steel.Issued.Equal(d("30")))
		assert.True(t, steel.Returns.Equal(d("5")))
		assert.True(t, steel.Losses.Equal(d("2")))
	})

	t.Run("keys with no movement that day close flat", func(t *testing.T) {
		cement := rows[0]
		assert.Equal(t, "Cement", cement.MaterialName)
		assert.True(t, cement.Opening.Equal(cement.Closing))
		assert.True(t, cement.Received.IsZero())
		assert.True(t, cement.Closing.Equal(d("50")))
	})
}
