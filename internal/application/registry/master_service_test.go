package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/infrastructure/sheets"
)

func TestMasterServiceSeed(t *testing.T) {
	ctx := context.Background()
	svc := NewMasterService(sheets.NewMemoryStore(), zap.NewNop())

	materialsSeeded, gradesSeeded, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, materialsSeeded)
	assert.True(t, gradesSeeded)

	materials, err := svc.ListMaterials(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(materials), seedGuard)

	grades, err := svc.ListGrades(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(grades), seedGuard)

	t.Run("seeding a populated catalog is a no-op", func(t *testing.T) {
		before := len(materials)
		materialsSeeded, gradesSeeded, err := svc.Seed(ctx)
		require.NoError(t, err)
		assert.False(t, materialsSeeded)
		assert.False(t, gradesSeeded)

		after, err := svc.ListMaterials(ctx)
		require.NoError(t, err)
		assert.Len(t, after, before)
	})
}

func TestAddMaterial(t *testing.T) {
	ctx := context.Background()
	svc := NewMasterService(sheets.NewMemoryStore(), zap.NewNop())

	_, err := svc.AddMaterial(ctx, register.MaterialMasterRecord{
		MaterialName: "Bitumen", MaterialCategory: "Binder", Unit: "Kg", AddedBy: "Ravi",
	})
	require.NoError(t, err)

	t.Run("names are unique case-insensitively", func(t *testing.T) {
		_, err := svc.AddMaterial(ctx, register.MaterialMasterRecord{MaterialName: "BITUMEN"})
		assertDomainCode(t, err, "ALREADY_EXISTS")
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := svc.AddMaterial(ctx, register.MaterialMasterRecord{MaterialName: " "})
		assertDomainCode(t, err, "INVALID_INPUT")
	})
}

func TestAddGrade(t *testing.T) {
	ctx := context.Background()
	svc := NewMasterService(sheets.NewMemoryStore(), zap.NewNop())

	_, err := svc.AddGrade(ctx, register.GradeMasterRecord{Grade: "25mm", MaterialCategory: "Steel"})
	require.NoError(t, err)

	t.Run("the same grade may repeat in another category", func(t *testing.T) {
		_, err := svc.AddGrade(ctx, register.GradeMasterRecord{Grade: "25mm", MaterialCategory: "Aggregate"})
		assert.NoError(t, err)
	})

	t.Run("but not within one category", func(t *testing.T) {
		_, err := svc.AddGrade(ctx, register.GradeMasterRecord{Grade: "25MM", MaterialCategory: "steel"})
		assertDomainCode(t, err, "ALREADY_EXISTS")
	})
}
