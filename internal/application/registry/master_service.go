package registry

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/domain/shared"
)

// seedGuard is the row count below which the masters are considered
// uninitialized and get the default catalog.
const seedGuard = 5

// MasterService manages the material and grade master catalogs.
type MasterService struct {
	store  register.RowStore
	logger *zap.Logger
	now    func() time.Time
}

// NewMasterService creates a new MasterService.
func NewMasterService(store register.RowStore, logger *zap.Logger) *MasterService {
	return &MasterService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ListMaterials returns the material master catalog.
func (s *MasterService) ListMaterials(ctx context.Context) ([]register.MaterialMasterRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterMaterialMaster)
	if err != nil {
		return nil, err
	}
	return register.ParseMaterialMasterRows(rows), nil
}

// AddMaterial appends a material to the master catalog. Names are unique,
// case-insensitively.
func (s *MasterService) AddMaterial(ctx context.Context, rec register.MaterialMasterRecord) (register.MaterialMasterRecord, error) {
	if strings.TrimSpace(rec.MaterialName) == "" {
		return register.MaterialMasterRecord{}, shared.NewDomainError("INVALID_INPUT", "Material name is required")
	}

	existing, err := s.ListMaterials(ctx)
	if err != nil {
		return register.MaterialMasterRecord{}, err
	}
	for _, m := range existing {
		if strings.EqualFold(m.MaterialName, rec.MaterialName) {
			return register.MaterialMasterRecord{}, shared.NewDomainError("ALREADY_EXISTS", "Material already exists: "+rec.MaterialName)
		}
	}

	rec.DateAdded = s.now()
	if err := s.store.Append(ctx, register.RegisterMaterialMaster, rec.Row()); err != nil {
		return register.MaterialMasterRecord{}, err
	}

	s.logger.Info("material added to master", zap.String("material", rec.MaterialName))
	return rec, nil
}

// ListGrades returns the grade master catalog.
func (s *MasterService) ListGrades(ctx context.Context) ([]register.GradeMasterRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterGradeMaster)
	if err != nil {
		return nil, err
	}
	return register.ParseGradeMasterRows(rows), nil
}

// AddGrade appends a grade to the master catalog. A grade name may repeat
// across material categories but not within one.
func (s *MasterService) AddGrade(ctx context.Context, rec register.GradeMasterRecord) (register.GradeMasterRecord, error) {
	if strings.TrimSpace(rec.Grade) == "" {
		return register.GradeMasterRecord{}, shared.NewDomainError("INVALID_INPUT", "Grade is required")
	}

	existing, err := s.ListGrades(ctx)
	if err != nil {
		return register.GradeMasterRecord{}, err
	}
	for _, g := range existing {
		if strings.EqualFold(g.Grade, rec.Grade) && strings.EqualFold(g.MaterialCategory, rec.MaterialCategory) {
			return register.GradeMasterRecord{}, shared.NewDomainError("ALREADY_EXISTS", "Grade already exists: "+rec.Grade)
		}
	}

	rec.DateAdded = s.now()
	if err := s.store.Append(ctx, register.RegisterGradeMaster, rec.Row()); err != nil {
		return register.GradeMasterRecord{}, err
	}

	s.logger.Info("grade added to master", zap.String("grade", rec.Grade))
	return rec, nil
}

// Seed loads the default catalogs into any master that holds fewer than
// five rows. Re-running it against populated masters is a no-op, so the
// call is safe on every startup.
func (s *MasterService) Seed(ctx context.Context) (materialsSeeded, gradesSeeded bool, err error) {
	materials, err := s.ListMaterials(ctx)
	if err != nil {
		return false, false, err
	}
	if len(materials) < seedGuard {
		defaults := register.DefaultMaterials(s.now())
		rows := make([][]string, 0, len(defaults))
		for _, m := range defaults {
			rows = append(rows, m.Row())
		}
		if err := s.store.Rewrite(ctx, register.RegisterMaterialMaster, rows); err != nil {
			return false, false, err
		}
		materialsSeeded = true
		s.logger.Info("material master seeded", zap.Int("count", len(rows)))
	}

	grades, err := s.ListGrades(ctx)
	if err != nil {
		return materialsSeeded, false, err
	}
	if len(grades) < seedGuard {
		defaults := register.DefaultGrades(s.now())
		rows := make([][]string, 0, len(defaults))
		for _, g := range defaults {
			rows = append(rows, g.Row())
		}
		if err := s.store.Rewrite(ctx, register.RegisterGradeMaster, rows); err != nil {
			return materialsSeeded, false, err
		}
		gradesSeeded = true
		s.logger.Info("grade master seeded", zap.Int("count", len(rows)))
	}

	return materialsSeeded, gradesSeeded, nil
}
