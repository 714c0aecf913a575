package stock

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/ledger"
	"github.com/sitestock/backend/internal/domain/register"
)

// StockService derives ledger views from the movement registers: the stock
// summary, low-stock alerts and expiry alerts. It holds no state of its
// own; every call folds the registers afresh (reads are served by the
// register cache underneath).
type StockService struct {
	store  register.RowStore
	logger *zap.Logger
	now    func() time.Time
}

// NewStockService creates a new StockService.
func NewStockService(store register.RowStore, logger *zap.Logger) *StockService {
	return &StockService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Movements reads and decodes all movement registers.
func (s *StockService) Movements(ctx context.Context) (ledger.Movements, error) {
	var m ledger.Movements

	rows, err := s.store.ReadAll(ctx, register.RegisterInward)
	if err != nil {
		return m, err
	}
	m.Inward = register.ParseInwardRows(rows)

	rows, err = s.store.ReadAll(ctx, register.RegisterOutward)
	if err != nil {
		return m, err
	}
	m.Outward = register.ParseOutwardRows(rows)

	rows, err = s.store.ReadAll(ctx, register.RegisterReturns)
	if err != nil {
		return m, err
	}
	m.Returns = register.ParseReturnRows(rows)

	rows, err = s.store.ReadAll(ctx, register.RegisterDamage)
	if err != nil {
		return m, err
	}
	m.Damage = register.ParseDamageRows(rows)

	rows, err = s.store.ReadAll(ctx, register.RegisterTransfer)
	if err != nil {
		return m, err
	}
	m.Transfers = register.ParseTransferRows(rows)

	return m, nil
}

// Positions folds the movements into the current ledger positions.
func (s *StockService) Positions(ctx context.Context) (map[register.MaterialKey]*ledger.StockPosition, error) {
	m, err := s.Movements(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Aggregate(m), nil
}

// SummaryItem is one line of the stock summary view.
type SummaryItem struct {
	MaterialName     string           `json:"material_name"`
	Grade            string           `json:"grade"`
	Unit             string           `json:"unit"`
	TotalInward      decimal.Decimal  `json:"total_inward"`
	TotalOutward     decimal.Decimal  `json:"total_outward"`
	TotalReturns     decimal.Decimal  `json:"total_returns"`
	TotalLoss        decimal.Decimal  `json:"total_loss"`
	TotalTransferred decimal.Decimal  `json:"total_transferred"`
	CurrentStock     decimal.Decimal  `json:"current_stock"`
	AvgRate          decimal.Decimal  `json:"avg_rate"`
	StockValue       decimal.Decimal  `json:"stock_value"`
	Threshold        *decimal.Decimal `json:"threshold,omitempty"`
	Status           string           `json:"status"`
}

// foldKey lowercases a key so the limits join is case-insensitive, matching
// the write-time dedup in the limits register.
func foldKey(k register.MaterialKey) register.MaterialKey {
	return register.MaterialKey{
		MaterialName: strings.ToLower(k.MaterialName),
		Grade:        strings.ToLower(k.Grade),
	}
}

// limits reads the low-stock thresholds keyed by folded material key.
func (s *StockService) limits(ctx context.Context) (map[register.MaterialKey]register.StockLimitRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterStockLimits)
	if err != nil {
		return nil, err
	}
	out := make(map[register.MaterialKey]register.StockLimitRecord)
	for _, l := range register.ParseStockLimitRows(rows) {
		out[foldKey(l.Key())] = l
	}
	return out, nil
}

// Summary returns every ledger position with its alert status, ordered by
// material name then grade.
func (s *StockService) Summary(ctx context.Context) ([]SummaryItem, error) {
	positions, err := s.Positions(ctx)
	if err != nil {
		return nil, err
	}
	limits, err := s.limits(ctx)
	if err != nil {
		return nil, err
	}

	sorted := ledger.Sorted(positions)
	items := make([]SummaryItem, 0, len(sorted))
	for _, p := range sorted {
		var threshold *decimal.Decimal
		if l, ok := limits[foldKey(p.Key)]; ok {
			t := l.Threshold
			threshold = &t
		}
		items = append(items, SummaryItem{
			MaterialName:     p.Key.MaterialName,
			Grade:            p.Key.Grade,
			Unit:             p.Unit,
			TotalInward:      p.TotalInward,
			TotalOutward:     p.TotalOutward,
			TotalReturns:     p.TotalReturns,
			TotalLoss:        p.TotalLoss,
			TotalTransferred: p.TotalTransferred,
			CurrentStock:     p.CurrentStock,
			AvgRate:          p.AvgRate,
			StockValue:       p.StockValue,
			Threshold:        threshold,
			Status:           ledger.EvaluateStatus(p.CurrentStock, threshold),
		})
	}
	return items, nil
}

// Alerts returns the summary lines that are low or out of stock.
func (s *StockService) Alerts(ctx context.Context) ([]SummaryItem, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	var alerts []SummaryItem
	for _, item := range summary {
		if item.Status != ledger.StatusInStock {
			alerts = append(alerts, item)
		}
	}
	return alerts, nil
}

// Expiry returns inward batches expired or expiring within 30 days.
func (s *StockService) Expiry(ctx context.Context) ([]ledger.ExpiryAlert, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterInward)
	if err != nil {
		return nil, err
	}
	return ledger.EvaluateExpiry(register.ParseInwardRows(rows), s.now()), nil
}
