package registry

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/domain/shared"
)

// MovementFilter narrows movement listings. Empty fields match everything.
type MovementFilter struct {
	Date     string // YYYY-MM-DD
	Material string
	Grade    string
	Vendor   string
}

func (f MovementFilter) matchDate(t time.Time) bool {
	return f.Date == "" || t.Format(register.DateLayout) == f.Date
}

func (f MovementFilter) matchText(filter, value string) bool {
	return filter == "" || strings.EqualFold(strings.TrimSpace(value), strings.TrimSpace(filter))
}

// MovementService records and lists the four stock movement registers:
// inward, outward, returns and damage/loss.
type MovementService struct {
	store  register.RowStore
	logger *zap.Logger
	now    func() time.Time
}

// NewMovementService creates a new MovementService.
func NewMovementService(store register.RowStore, logger *zap.Logger) *MovementService {
	return &MovementService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func requireMaterial(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Material name is required")
	}
	return nil
}

// AddInward appends an inward entry. The amount is always derived from
// quantity and rate, never taken from the caller.
func (s *MovementService) AddInward(ctx context.Context, rec register.InwardRecord) (register.InwardRecord, error) {
	if err := requireMaterial(rec.MaterialName); err != nil {
		return register.InwardRecord{}, err
	}
	if !rec.Quantity.IsPositive() {
		return register.InwardRecord{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if rec.Rate.IsNegative() {
		return register.InwardRecord{}, shared.NewDomainError("INVALID_INPUT", "Rate cannot be negative")
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}
	rec.Amount = rec.Quantity.Mul(rec.Rate).Round(2)

	if err := s.store.Append(ctx, register.RegisterInward, rec.Row()); err != nil {
		return register.InwardRecord{}, err
	}

	s.logger.Info("inward entry recorded",
		zap.String("material", rec.MaterialName),
		zap.String("grade", rec.Grade),
		zap.String("quantity", rec.Quantity.String()))
	return rec, nil
}

// ListInward returns inward entries matching the filter.
func (s *MovementService) ListInward(ctx context.Context, f MovementFilter) ([]register.InwardRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterInward)
	if err != nil {
		return nil, err
	}
	var out []register.InwardRecord
	for _, rec := range register.ParseInwardRows(rows) {
		if f.matchDate(rec.Date) &&
			f.matchText(f.Material, rec.MaterialName) &&
			f.matchText(f.Grade, rec.Grade) &&
			f.matchText(f.Vendor, rec.Vendor) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// AddOutward appends an outward (issue) entry.
func (s *MovementService) AddOutward(ctx context.Context, rec register.OutwardRecord) (register.OutwardRecord, error) {
	if err := requireMaterial(rec.MaterialName); err != nil {
		return register.OutwardRecord{}, err
	}
	if !rec.Quantity.IsPositive() {
		return register.OutwardRecord{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	if err := s.store.Append(ctx, register.RegisterOutward, rec.Row()); err != nil {
		return register.OutwardRecord{}, err
	}

	s.logger.Info("outward entry recorded",
		zap.String("material", rec.MaterialName),
		zap.String("issued_to", rec.IssuedTo),
		zap.String("quantity", rec.Quantity.String()))
	return rec, nil
}

// ListOutward returns outward entries matching the filter.
func (s *MovementService) ListOutward(ctx context.Context, f MovementFilter) ([]register.OutwardRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterOutward)
	if err != nil {
		return nil, err
	}
	var out []register.OutwardRecord
	for _, rec := range register.ParseOutwardRows(rows) {
		if f.matchDate(rec.Date) &&
			f.matchText(f.Material, rec.MaterialName) &&
			f.matchText(f.Grade, rec.Grade) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// AddReturn appends a returns entry.
func (s *MovementService) AddReturn(ctx context.Context, rec register.ReturnRecord) (register.ReturnRecord, error) {
	if err := requireMaterial(rec.MaterialName); err != nil {
		return register.ReturnRecord{}, err
	}
	if !rec.Quantity.IsPositive() {
		return register.ReturnRecord{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	if err := s.store.Append(ctx, register.RegisterReturns, rec.Row()); err != nil {
		return register.ReturnRecord{}, err
	}

	s.logger.Info("return entry recorded",
		zap.String("material", rec.MaterialName),
		zap.String("quantity", rec.Quantity.String()))
	return rec, nil
}

// ListReturns returns return entries matching the filter.
func (s *MovementService) ListReturns(ctx context.Context, f MovementFilter) ([]register.ReturnRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterReturns)
	if err != nil {
		return nil, err
	}
	var out []register.ReturnRecord
	for _, rec := range register.ParseReturnRows(rows) {
		if f.matchDate(rec.Date) &&
			f.matchText(f.Material, rec.MaterialName) &&
			f.matchText(f.Grade, rec.Grade) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// AddDamage appends a damage/loss entry.
func (s *MovementService) AddDamage(ctx context.Context, rec register.DamageRecord) (register.DamageRecord, error) {
	if err := requireMaterial(rec.MaterialName); err != nil {
		return register.DamageRecord{}, err
	}
	if !rec.Quantity.IsPositive() {
		return register.DamageRecord{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	if err := s.store.Append(ctx, register.RegisterDamage, rec.Row()); err != nil {
		return register.DamageRecord{}, err
	}

	s.logger.Info("damage entry recorded",
		zap.String("material", rec.MaterialName),
		zap.String("reason", rec.Reason),
		zap.String("quantity", rec.Quantity.String()))
	return rec, nil
}

// ListDamage returns damage entries matching the filter.
func (s *MovementService) ListDamage(ctx context.Context, f MovementFilter) ([]register.DamageRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterDamage)
	if err != nil {
		return nil, err
	}
	var out []register.DamageRecord
	for _, rec := range register.ParseDamageRows(rows) {
		if f.matchDate(rec.Date) &&
			f.matchText(f.Material, rec.MaterialName) &&
			f.matchText(f.Grade, rec.Grade) {
			out = append(out, rec)
		}
	}
	return out, nil
}
