package registry

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/domain/shared"
)

// LimitService manages the low-stock thresholds. At most one limit row
// exists per (material, grade): setting a limit for a key that already has
// one updates the existing row in place instead of appending a duplicate.
type LimitService struct {
	store  register.RowStore
	logger *zap.Logger
	now    func() time.Time
}

// NewLimitService creates a new LimitService.
func NewLimitService(store register.RowStore, logger *zap.Logger) *LimitService {
	return &LimitService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// List returns all configured limits.
func (s *LimitService) List(ctx context.Context) ([]register.StockLimitRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterStockLimits)
	if err != nil {
		return nil, err
	}
	return register.ParseStockLimitRows(rows), nil
}

// Map returns the limits keyed by material, for stock status evaluation.
func (s *LimitService) Map(ctx context.Context) (map[register.MaterialKey]register.StockLimitRecord, error) {
	limits, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[register.MaterialKey]register.StockLimitRecord, len(limits))
	for _, l := range limits {
		out[l.Key()] = l
	}
	return out, nil
}

// Put upserts the threshold for one material key. The row index for an
// existing key is resolved from a fresh scan immediately before the write.
func (s *LimitService) Put(ctx context.Context, rec register.StockLimitRecord) (register.StockLimitRecord, error) {
	if err := requireMaterial(rec.MaterialName); err != nil {
		return register.StockLimitRecord{}, err
	}
	if rec.Threshold.IsNegative() {
		return register.StockLimitRecord{}, shared.NewDomainError("INVALID_INPUT", "Threshold cannot be negative")
	}
	rec.Date = s.now()

	rows, err := s.store.ReadAll(ctx, register.RegisterStockLimits)
	if err != nil {
		return register.StockLimitRecord{}, err
	}

	idx := s.findLimitRow(rows, rec.Key())
	if idx < 0 {
		if err := s.store.Append(ctx, register.RegisterStockLimits, rec.Row()); err != nil {
			return register.StockLimitRecord{}, err
		}
		s.logger.Info("stock limit added",
			zap.String("material", rec.MaterialName),
			zap.String("grade", rec.Grade),
			zap.String("threshold", rec.Threshold.String()))
		return rec, nil
	}

	if err := s.store.UpdateCell(ctx, register.RegisterStockLimits, idx, "Threshold", rec.Threshold.String()); err != nil {
		return register.StockLimitRecord{}, err
	}
	if err := s.store.UpdateCell(ctx, register.RegisterStockLimits, idx, "Set By", rec.SetBy); err != nil {
		return register.StockLimitRecord{}, err
	}
	if err := s.store.UpdateCell(ctx, register.RegisterStockLimits, idx, "Date", rec.Date.Format(register.DateLayout)); err != nil {
		return register.StockLimitRecord{}, err
	}

	s.logger.Info("stock limit updated",
		zap.String("material", rec.MaterialName),
		zap.String("grade", rec.Grade),
		zap.String("threshold", rec.Threshold.String()))
	return rec, nil
}

// findLimitRow locates the data row matching the (material, grade) key.
func (s *LimitService) findLimitRow(rows [][]string, key register.MaterialKey) int {
	matCol := register.RegisterStockLimits.ColumnIndex("Material Name")
	gradeCol := register.RegisterStockLimits.ColumnIndex("Grade")
	for i, row := range rows {
		mat, grade := "", ""
		if matCol < len(row) {
			mat = strings.TrimSpace(row[matCol])
		}
		if gradeCol < len(row) {
			grade = strings.TrimSpace(row[gradeCol])
		}
		if strings.EqualFold(mat, key.MaterialName) && strings.EqualFold(grade, key.Grade) {
			return i
		}
	}
	return -1
}
