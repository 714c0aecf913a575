package stock

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/domain/shared"
)

// ReportService builds the analysis views over the movement registers.
type ReportService struct {
	stock  *StockService
	logger *zap.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(stock *StockService, logger *zap.Logger) *ReportService {
	return &ReportService{stock: stock, logger: logger}
}

// DailySummaryRow is one date of the daily summary report.
type DailySummaryRow struct {
	Date        string          `json:"date"`
	InwardQty   decimal.Decimal `json:"inward_qty"`
	InwardValue decimal.Decimal `json:"inward_value"`
	OutwardQty  decimal.Decimal `json:"outward_qty"`
}

// Daily summarizes inward and outward activity per date over the inclusive
// range. Dates with no activity are omitted.
func (s *ReportService) Daily(ctx context.Context, from, to time.Time) ([]DailySummaryRow, error) {
	if from.After(to) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Start date cannot be later than end date")
	}

	m, err := s.stock.Movements(ctx)
	if err != nil {
		return nil, err
	}

	inRange := func(t time.Time) bool {
		day := t.Format(register.DateLayout)
		return day >= from.Format(register.DateLayout) && day <= to.Format(register.DateLayout)
	}

	byDate := make(map[string]*DailySummaryRow)
	at := func(day string) *DailySummaryRow {
		r, ok := byDate[day]
		if !ok {
			r = &DailySummaryRow{Date: day}
			byDate[day] = r
		}
		return r
	}

	for _, e := range m.Inward {
		if inRange(e.Date) {
			r := at(e.Date.Format(register.DateLayout))
			r.InwardQty = r.InwardQty.Add(e.Quantity)
			r.InwardValue = r.InwardValue.Add(e.Amount)
		}
	}
	for _, e := range m.Outward {
		if inRange(e.Date) {
			r := at(e.Date.Format(register.DateLayout))
			r.OutwardQty = r.OutwardQty.Add(e.Quantity)
		}
	}

	out := make([]DailySummaryRow, 0, len(byDate))
	for _, r := range byDate {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// MonthlySummaryRow is one month of the monthly rollup.
type MonthlySummaryRow struct {
	Month       string          `json:"month"` // YYYY-MM
	InwardQty   decimal.Decimal `json:"inward_qty"`
	InwardValue decimal.Decimal `json:"inward_value"`
	OutwardQty  decimal.Decimal `json:"outward_qty"`
}

// Monthly rolls the daily summary up into calendar months.
func (s *ReportService) Monthly(ctx context.Context, from, to time.Time) ([]MonthlySummaryRow, error) {
	daily, err := s.Daily(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*MonthlySummaryRow)
	for _, d := range daily {
		month := d.Date[:7]
		r, ok := byMonth[month]
		if !ok {
			r = &MonthlySummaryRow{Month: month}
			byMonth[month] = r
		}
		r.InwardQty = r.InwardQty.Add(d.InwardQty)
		r.InwardValue = r.InwardValue.Add(d.InwardValue)
		r.OutwardQty = r.OutwardQty.Add(d.OutwardQty)
	}

	out := make([]MonthlySummaryRow, 0, len(byMonth))
	for _, r := range byMonth {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// VendorAnalysisRow is one vendor of the purchase analysis.
type VendorAnalysisRow struct {
	Vendor     string          `json:"vendor"`
	TotalValue decimal.Decimal `json:"total_value"`
	TotalQty   decimal.Decimal `json:"total_qty"`
	AvgRate    decimal.Decimal `json:"avg_rate"`
	EntryCount int             `json:"entry_count"`
}

// Vendors aggregates inward purchases per vendor, largest spend first.
func (s *ReportService) Vendors(ctx context.Context) ([]VendorAnalysisRow, error) {
	m, err := s.stock.Movements(ctx)
	if err != nil {
		return nil, err
	}

	byVendor := make(map[string]*VendorAnalysisRow)
	for _, e := range m.Inward {
		vendor := strings.TrimSpace(e.Vendor)
		if vendor == "" {
			continue
		}
		r, ok := byVendor[vendor]
		if !ok {
			r = &VendorAnalysisRow{Vendor: vendor}
			byVendor[vendor] = r
		}
		r.TotalValue = r.TotalValue.Add(e.Amount)
		r.TotalQty = r.TotalQty.Add(e.Quantity)
		r.EntryCount++
	}

	out := make([]VendorAnalysisRow, 0, len(byVendor))
	for _, r := range byVendor {
		if r.TotalQty.IsPositive() {
			r.AvgRate = r.TotalValue.Div(r.TotalQty).Round(4)
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalValue.GreaterThan(out[j].TotalValue)
	})
	return out, nil
}

// MaterialAnalysisRow is one material of the purchase analysis.
type MaterialAnalysisRow struct {
	MaterialName string          `json:"material_name"`
	Grade        string          `json:"grade"`
	TotalValue   decimal.Decimal `json:"total_value"`
	TotalQty     decimal.Decimal `json:"total_qty"`
	AvgRate      decimal.Decimal `json:"avg_rate"`
	VendorCount  int             `json:"vendor_count"`
}

// Materials aggregates inward purchases per material key, largest spend
// first, with the number of distinct supplying vendors.
func (s *ReportService) Materials(ctx context.Context) ([]MaterialAnalysisRow, error) {
	m, err := s.stock.Movements(ctx)
	if err != nil {
		return nil, err
	}

	type acc struct {
		row     MaterialAnalysisRow
		vendors map[string]struct{}
	}
	byKey := make(map[register.MaterialKey]*acc)
	for _, e := range m.Inward {
		key := e.Key()
		a, ok := byKey[key]
		if !ok {
			a = &acc{
				row:     MaterialAnalysisRow{MaterialName: key.MaterialName, Grade: key.Grade},
				vendors: make(map[string]struct{}),
			}
			byKey[key] = a
		}
		a.row.TotalValue = a.row.TotalValue.Add(e.Amount)
		a.row.TotalQty = a.row.TotalQty.Add(e.Quantity)
		if v := strings.TrimSpace(e.Vendor); v != "" {
			a.vendors[strings.ToLower(v)] = struct{}{}
		}
	}

	out := make([]MaterialAnalysisRow, 0, len(byKey))
	for _, a := range byKey {
		if a.row.TotalQty.IsPositive() {
			a.row.AvgRate = a.row.TotalValue.Div(a.row.TotalQty).Round(4)
		}
		a.row.VendorCount = len(a.vendors)
		out = append(out, a.row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalValue.GreaterThan(out[j].TotalValue)
	})
	return out, nil
}
