package register

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestInwardRowRoundtrip(t *testing.T) {
	in := InwardRecord{
		Date:          day("2026-05-12"),
		MaterialName:  "Steel",
		Material:      "Steel",
		Grade:         "12mm",
		Vendor:        "Acme Traders",
		Quantity:      d("100"),
		Unit:          "Kg",
		Rate:          d("61.5"),
		Amount:        d("6150"),
		InvoiceNumber: "INV-204",
		ReceivedBy:    "Ravi",
		ExpiryDate:    day("2027-05-12"),
		Remarks:       "partial delivery",
	}

	row := in.Row()
	require.Len(t, row, len(RegisterInward.Header()))

	got, err := ParseInwardRow(row)
	require.NoError(t, err)
	assert.Equal(t, in.MaterialName, got.MaterialName)
	assert.Equal(t, in.Vendor, got.Vendor)
	assert.True(t, got.Quantity.Equal(in.Quantity))
	assert.True(t, got.Rate.Equal(in.Rate))
	assert.True(t, got.Amount.Equal(in.Amount))
	assert.Equal(t, in.Date, got.Date)
	assert.Equal(t, in.ExpiryDate, got.ExpiryDate)
	assert.True(t, got.MfgDate.IsZero(), "absent mfg date stays zero")
}

func TestParseInwardRow(t *testing.T) {
	t.Run("short rows read missing cells as blank", func(t *testing.T) {
		got, err := ParseInwardRow([]string{"2026-05-12", "Cement"})
		require.NoError(t, err)
		assert.Equal(t, "Cement", got.MaterialName)
		assert.True(t, got.Quantity.IsZero())
		assert.Empty(t, got.Unit)
	})

	t.Run("bad date fails", func(t *testing.T) {
		_, err := ParseInwardRow([]string{"12/05/2026", "Cement"})
		assert.Error(t, err)
	})

	t.Run("non-numeric quantity fails", func(t *testing.T) {
		_, err := ParseInwardRow([]string{"2026-05-12", "Cement", "", "", "", "fifty"})
		assert.Error(t, err)
	})
}

func TestParseDecimal(t *testing.T) {
	t.Run("blank is zero", func(t *testing.T) {
		v, err := parseDecimal("")
		require.NoError(t, err)
		assert.True(t, v.IsZero())
	})

	t.Run("thousands separators are stripped", func(t *testing.T) {
		v, err := parseDecimal("1,250.75")
		require.NoError(t, err)
		assert.True(t, v.Equal(d("1250.75")))
	})

	t.Run("non-numeric fails", func(t *testing.T) {
		_, err := parseDecimal("n/a")
		assert.Error(t, err)
	})
}

func TestTransferRowRoundtrip(t *testing.T) {
	rec := TransferRecord{
		TransferNo:   "TRF20260512101500",
		Date:         day("2026-05-12"),
		FromLocation: "Site A",
		ToLocation:   "Site B",
		MaterialName: "Cement",
		Quantity:     d("25"),
		Unit:         "Bag",
		Status:       TransferStatusPending,
	}

	got, err := ParseTransferRow(rec.Row())
	require.NoError(t, err)
	assert.Equal(t, rec.TransferNo, got.TransferNo)
	assert.Equal(t, rec.FromLocation, got.FromLocation)
	assert.Equal(t, rec.Status, got.Status)
	assert.True(t, got.Quantity.Equal(rec.Quantity))
}

func TestParseVendorRow(t *testing.T) {
	t.Run("missing vendor name fails", func(t *testing.T) {
		_, err := ParseVendorRow([]string{"", "Steel"})
		assert.Error(t, err)
	})

	t.Run("cells are trimmed", func(t *testing.T) {
		got, err := ParseVendorRow([]string{" Acme Traders ", "Steel"})
		require.NoError(t, err)
		assert.Equal(t, "Acme Traders", got.VendorName)
	})
}

func TestParseInwardRows(t *testing.T) {
	rows := [][]string{
		{"2026-05-12", "Steel", "", "12mm", "Acme", "100", "Kg", "60", "6000"},
		{"not-a-date", "Steel"},
		{"2026-05-13", "Cement", "", "", "Acme", "50", "Bag", "380", "19000"},
	}

	got := ParseInwardRows(rows)
	require.Len(t, got, 2, "the malformed row is dropped")
	assert.Equal(t, "Steel", got[0].MaterialName)
	assert.Equal(t, "Cement", got[1].MaterialName)
}

func TestColumnIndex(t *testing.T) {
	assert.Equal(t, 8, RegisterIndent.ColumnIndex("Status"))
	assert.Equal(t, 0, RegisterVendor.ColumnIndex("Vendor Name"))
	assert.Equal(t, -1, RegisterVendor.ColumnIndex("Status"))
}
