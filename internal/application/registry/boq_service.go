package registry

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/domain/shared"
)

// BOQService manages the bill-of-quantities mapping between contract items
// and materials.
type BOQService struct {
	store  register.RowStore
	logger *zap.Logger
}

// NewBOQService creates a new BOQService.
func NewBOQService(store register.RowStore, logger *zap.Logger) *BOQService {
	return &BOQService{store: store, logger: logger}
}

// List returns all BOQ mappings.
func (s *BOQService) List(ctx context.Context) ([]register.BOQRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterBOQ)
	if err != nil {
		return nil, err
	}
	return register.ParseBOQRows(rows), nil
}

// Add appends a BOQ mapping.
func (s *BOQService) Add(ctx context.Context, rec register.BOQRecord) (register.BOQRecord, error) {
	if strings.TrimSpace(rec.BOQItem) == "" {
		return register.BOQRecord{}, shared.NewDomainError("INVALID_INPUT", "BOQ item is required")
	}
	if err := requireMaterial(rec.MaterialName); err != nil {
		return register.BOQRecord{}, err
	}
	if !rec.QuantityAllocated.IsPositive() {
		return register.BOQRecord{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}

	if err := s.store.Append(ctx, register.RegisterBOQ, rec.Row()); err != nil {
		return register.BOQRecord{}, err
	}

	s.logger.Info("boq mapping added",
		zap.String("boq_item", rec.BOQItem),
		zap.String("material", rec.MaterialName))
	return rec, nil
}
