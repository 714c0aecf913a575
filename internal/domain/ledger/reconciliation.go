package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitestock/backend/internal/domain/register"
)

// PhysicalCount is one counted line of a reconciliation submission.
type PhysicalCount struct {
	Key    register.MaterialKey `json:"key"`
	Actual decimal.Decimal      `json:"actual"`
}

// BuildReconciliation turns a physical count into register rows. The
// theoretical figure is read from the positions at submission time and the
// variance is actual minus theoretical. Lines with zero actual stock and
// zero variance carry no information and are omitted.
func BuildReconciliation(
	positions map[register.MaterialKey]*StockPosition,
	counts []PhysicalCount,
	reconciledBy string,
	remarks string,
	date time.Time,
) []register.ReconciliationRecord {
	var rows []register.ReconciliationRecord
	for _, c := range counts {
		theoretical := decimal.Zero
		unit := register.DefaultUnit
		if p, ok := positions[c.Key]; ok {
			theoretical = p.CurrentStock
			unit = p.Unit
		}
		variance := c.Actual.Sub(theoretical)
		if !c.Actual.IsPositive() && variance.IsZero() {
			continue
		}
		rows = append(rows, register.ReconciliationRecord{
			Date:         date,
			MaterialName: c.Key.MaterialName,
			Grade:        c.Key.Grade,
			Unit:         unit,
			Theoretical:  theoretical,
			Actual:       c.Actual,
			Variance:     variance,
			ReconciledBy: reconciledBy,
			Remarks:      remarks,
		})
	}
	return rows
}

// BuildSnapshot renders every position as a Stock Snapshot row, ordered by
// material name then grade.
func BuildSnapshot(positions map[register.MaterialKey]*StockPosition, generatedAt time.Time) []register.SnapshotRecord {
	sorted := Sorted(positions)
	rows := make([]register.SnapshotRecord, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, register.SnapshotRecord{
			MaterialName: p.Key.MaterialName,
			Grade:        p.Key.Grade,
			Unit:         p.Unit,
			TotalInward:  p.TotalInward,
			TotalOutward: p.TotalOutward,
			TotalReturns: p.TotalReturns,
			TotalLoss:    p.TotalLoss,
			CurrentStock: p.CurrentStock,
			AvgRate:      p.AvgRate,
			StockValue:   p.StockValue,
			GeneratedAt:  generatedAt,
		})
	}
	return rows
}
