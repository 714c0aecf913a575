package register

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBusinessNumber(t *testing.T) {
	at := time.Date(2026, 8, 23, 15, 12, 4, 0, time.UTC)

	first := NewBusinessNumber(IndentNumberPrefix, at)
	second := NewBusinessNumber(IndentNumberPrefix, at)
	assert.Regexp(t, `^IND20260823151204\d{3}$`, first)
	assert.Regexp(t, `^IND20260823151204\d{3}$`, second)
	assert.NotEqual(t, first, second, "numbers within the same second stay distinct")

	assert.Regexp(t, `^TRF\d{17}$`, NewBusinessNumber(TransferNumberPrefix, at))
	assert.Regexp(t, `^SCR\d{17}$`, NewBusinessNumber(ScrapNumberPrefix, at))
}

func TestNewMaterialKey(t *testing.T) {
	k := NewMaterialKey("  Steel ", " 12mm ")
	assert.Equal(t, "Steel", k.MaterialName)
	assert.Equal(t, "12mm", k.Grade)
	assert.Equal(t, "Steel / 12mm", k.String())
	assert.Equal(t, "Cement", NewMaterialKey("Cement", "").String())
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, ValidIndentStatus(IndentStatusApproved))
	assert.False(t, ValidIndentStatus("Cancelled"))
	assert.True(t, ValidTransferStatus(TransferStatusInTransit))
	assert.False(t, ValidTransferStatus("Shipped"))
	assert.True(t, ValidScrapStatus(ScrapStatusSold))
	assert.False(t, ValidScrapStatus("Scrapped"))
}

func TestDefaultSeedCatalogs(t *testing.T) {
	on := day("2026-01-01")

	materials := DefaultMaterials(on)
	assert.NotEmpty(t, materials)
	for _, m := range materials {
		assert.NotEmpty(t, m.MaterialName)
		assert.Equal(t, "System", m.AddedBy)
		assert.Equal(t, on, m.DateAdded)
	}

	grades := DefaultGrades(on)
	assert.NotEmpty(t, grades)
	for _, g := range grades {
		assert.NotEmpty(t, g.Grade)
		assert.NotEmpty(t, g.MaterialCategory)
	}
}
