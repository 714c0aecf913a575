package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitestock/backend/internal/domain/register"
)

// Stock statuses as shown on the stock views.
const (
	StatusOutOfStock = "Out of Stock"
	StatusLowStock   = "Low Stock"
	StatusInStock    = "In Stock"
)

// EvaluateStatus classifies a position against its low-stock threshold.
// A nil threshold means no limit is configured, so the position can only
// be In Stock or Out of Stock.
func EvaluateStatus(current decimal.Decimal, threshold *decimal.Decimal) string {
	if current.LessThanOrEqual(decimal.Zero) {
		return StatusOutOfStock
	}
	if threshold != nil && current.LessThanOrEqual(*threshold) {
		return StatusLowStock
	}
	return StatusInStock
}

// ConsumptionNearlyExhausted is the dashboard-only heuristic: outward
// exceeding 80% of inward flags the material as running low. It is never
// persisted and is independent of configured thresholds.
func ConsumptionNearlyExhausted(totalInward, totalOutward decimal.Decimal) bool {
	if !totalInward.IsPositive() {
		return false
	}
	return totalOutward.GreaterThan(totalInward.Mul(decimal.NewFromFloat(0.8)))
}

// Expiry bands.
const (
	ExpiryExpired  = "Expired"
	ExpiryCritical = "Critical"
	ExpiryWarning  = "Warning"
	ExpiryNormal   = "Normal"
)

// ExpiryAlert is one inward batch approaching or past its expiry date.
type ExpiryAlert struct {
	Key        register.MaterialKey `json:"key"`
	Vendor     string               `json:"vendor"`
	Quantity   decimal.Decimal      `json:"quantity"`
	Unit       string               `json:"unit"`
	ExpiryDate time.Time            `json:"expiry_date"`
	DaysLeft   int                  `json:"days_left"`
	Band       string               `json:"band"`
}

// ClassifyExpiry maps days-to-expiry onto a band.
func ClassifyExpiry(daysLeft int) string {
	switch {
	case daysLeft < 0:
		return ExpiryExpired
	case daysLeft <= 7:
		return ExpiryCritical
	case daysLeft <= 30:
		return ExpiryWarning
	default:
		return ExpiryNormal
	}
}

// DaysUntil counts whole days from today to the given date, both truncated
// to midnight.
func DaysUntil(today, date time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}

// EvaluateExpiry scans inward entries for batches expiring within the alert
// horizon (30 days) or already expired. Entries without an expiry date are
// excluded entirely. The result is sorted soonest-expiring first and is
// stable for a fixed today.
func EvaluateExpiry(inward []register.InwardRecord, today time.Time) []ExpiryAlert {
	var alerts []ExpiryAlert
	for _, e := range inward {
		if e.ExpiryDate.IsZero() {
			continue
		}
		days := DaysUntil(today, e.ExpiryDate)
		band := ClassifyExpiry(days)
		if band == ExpiryNormal {
			continue
		}
		alerts = append(alerts, ExpiryAlert{
			Key:        e.Key(),
			Vendor:     e.Vendor,
			Quantity:   e.Quantity,
			Unit:       e.Unit,
			ExpiryDate: e.ExpiryDate,
			DaysLeft:   days,
			Band:       band,
		})
	}
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].DaysLeft < alerts[j].DaysLeft
	})
	return alerts
}
