package stock

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/ledger"
	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/domain/shared"
)

// ReconciliationService records physical counts against the theoretical
// ledger and maintains the stock snapshot sheet.
type ReconciliationService struct {
	store  register.RowStore
	stock  *StockService
	logger *zap.Logger
	now    func() time.Time
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(store register.RowStore, stock *StockService, logger *zap.Logger) *ReconciliationService {
	return &ReconciliationService{
		store:  store,
		stock:  stock,
		logger: logger,
		now:    time.Now,
	}
}

// Submit computes variances for a physical count and persists the
// informative lines as one batch append, so a partially written
// reconciliation cannot exist.
func (s *ReconciliationService) Submit(ctx context.Context, reconciledBy, remarks string, counts []ledger.PhysicalCount) ([]register.ReconciliationRecord, error) {
	if strings.TrimSpace(reconciledBy) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Reconciled by is required")
	}
	if len(counts) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "At least one count is required")
	}

	positions, err := s.stock.Positions(ctx)
	if err != nil {
		return nil, err
	}

	records := ledger.BuildReconciliation(positions, counts, reconciledBy, remarks, s.now())
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row())
	}
	if err := s.store.AppendAll(ctx, register.RegisterReconciliation, rows); err != nil {
		return nil, err
	}

	s.logger.Info("reconciliation recorded",
		zap.String("reconciled_by", reconciledBy),
		zap.Int("lines", len(records)))
	return records, nil
}

// List returns all reconciliation entries, newest submission last.
func (s *ReconciliationService) List(ctx context.Context) ([]register.ReconciliationRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterReconciliation)
	if err != nil {
		return nil, err
	}
	return register.ParseReconciliationRows(rows), nil
}

// RefreshSnapshot recomputes every position and rewrites the snapshot
// sheet wholesale.
func (s *ReconciliationService) RefreshSnapshot(ctx context.Context) ([]register.SnapshotRecord, error) {
	positions, err := s.stock.Positions(ctx)
	if err != nil {
		return nil, err
	}

	records := ledger.BuildSnapshot(positions, s.now())
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Row())
	}
	if err := s.store.Rewrite(ctx, register.RegisterSnapshot, rows); err != nil {
		return nil, err
	}

	s.logger.Info("stock snapshot refreshed", zap.Int("lines", len(records)))
	return records, nil
}
