package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/ledger"
	"github.com/sitestock/backend/internal/domain/register"
)

// recentInwardLimit caps the recent-entries panel.
const recentInwardLimit = 5

// Dashboard is the landing-page metrics bundle.
//
// LowStockCount uses the consumption heuristic (outward above 80% of
// inward), not the configured thresholds, and the displayed stock never
// goes below zero. Both are display conventions only; the ledger itself
// stays signed.
type Dashboard struct {
	TotalPurchaseValue decimal.Decimal         `json:"total_purchase_value"`
	MaterialCount      int                     `json:"material_count"`
	VendorCount        int                     `json:"vendor_count"`
	PendingIndents     int                     `json:"pending_indents"`
	MonthInwardQty     decimal.Decimal         `json:"month_inward_qty"`
	LowStockCount      int                     `json:"low_stock_count"`
	RecentInward       []register.InwardRecord `json:"recent_inward"`
	ExpiryAlerts       []ledger.ExpiryAlert    `json:"expiry_alerts"`
}

// DashboardService assembles the dashboard metrics.
type DashboardService struct {
	store  register.RowStore
	stock  *StockService
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store register.RowStore, stock *StockService, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		store:  store,
		stock:  stock,
		logger: logger,
		now:    time.Now,
	}
}

// Metrics computes the dashboard for the current moment.
func (s *DashboardService) Metrics(ctx context.Context) (*Dashboard, error) {
	m, err := s.stock.Movements(ctx)
	if err != nil {
		return nil, err
	}
	positions := ledger.Aggregate(m)

	d := &Dashboard{
		MaterialCount: len(positions),
		ExpiryAlerts:  ledger.EvaluateExpiry(m.Inward, s.now()),
	}

	month := s.now().Format("2006-01")
	for _, e := range m.Inward {
		d.TotalPurchaseValue = d.TotalPurchaseValue.Add(e.Amount)
		if e.Date.Format("2006-01") == month {
			d.MonthInwardQty = d.MonthInwardQty.Add(e.Quantity)
		}
	}

	for _, p := range positions {
		if ledger.ConsumptionNearlyExhausted(p.TotalInward, p.TotalOutward) {
			d.LowStockCount++
		}
	}

	vendorRows, err := s.store.ReadAll(ctx, register.RegisterVendor)
	if err != nil {
		return nil, err
	}
	d.VendorCount = len(register.ParseVendorRows(vendorRows))

	indentRows, err := s.store.ReadAll(ctx, register.RegisterIndent)
	if err != nil {
		return nil, err
	}
	for _, ind := range register.ParseIndentRows(indentRows) {
		if ind.Status == register.IndentStatusPending {
			d.PendingIndents++
		}
	}

	// Last entries in register order are the most recent appends.
	inward := m.Inward
	for i := len(inward) - 1; i >= 0 && len(d.RecentInward) < recentInwardLimit; i-- {
		d.RecentInward = append(d.RecentInward, inward[i])
	}

	return d, nil
}
