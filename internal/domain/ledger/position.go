package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sitestock/backend/internal/domain/register"
)

// Movements carries the decoded register entries the ledger folds over.
type Movements struct {
	Inward    []register.InwardRecord
	Outward   []register.OutwardRecord
	Returns   []register.ReturnRecord
	Damage    []register.DamageRecord
	Transfers []register.TransferRecord
}

// StockPosition is the derived ledger line for one material key.
//
// CurrentStock is signed and never clamped: over-issue shows up as a
// negative position rather than being hidden.
type StockPosition struct {
	Key              register.MaterialKey `json:"key"`
	Unit             string               `json:"unit"`
	TotalInward      decimal.Decimal      `json:"total_inward"`
	TotalOutward     decimal.Decimal      `json:"total_outward"`
	TotalReturns     decimal.Decimal      `json:"total_returns"`
	TotalLoss        decimal.Decimal      `json:"total_loss"`
	TotalTransferred decimal.Decimal      `json:"total_transferred"`
	CurrentStock     decimal.Decimal      `json:"current_stock"`
	AvgRate          decimal.Decimal      `json:"avg_rate"`
	StockValue       decimal.Decimal      `json:"stock_value"`

	inwardAmount decimal.Decimal
}

// Aggregate folds all movements into one StockPosition per material key.
//
// The unit comes from the first inward entry of a key; keys that never had
// an inward entry get the default unit. The weighted-average rate is taken
// over inward entries only and is zero when no inward quantity exists.
func Aggregate(m Movements) map[register.MaterialKey]*StockPosition {
	positions := make(map[register.MaterialKey]*StockPosition)

	at := func(key register.MaterialKey) *StockPosition {
		p, ok := positions[key]
		if !ok {
			p = &StockPosition{Key: key, Unit: register.DefaultUnit}
			positions[key] = p
		}
		return p
	}

	for _, e := range m.Inward {
		p := at(e.Key())
		if p.Unit == register.DefaultUnit && e.Unit != "" {
			p.Unit = e.Unit
		}
		p.TotalInward = p.TotalInward.Add(e.Quantity)
		p.inwardAmount = p.inwardAmount.Add(e.Quantity.Mul(e.Rate))
	}
	for _, e := range m.Outward {
		p := at(e.Key())
		p.TotalOutward = p.TotalOutward.Add(e.Quantity)
	}
	for _, e := range m.Returns {
		p := at(e.Key())
		p.TotalReturns = p.TotalReturns.Add(e.Quantity)
	}
	for _, e := range m.Damage {
		p := at(e.Key())
		p.TotalLoss = p.TotalLoss.Add(e.Quantity)
	}
	for _, e := range m.Transfers {
		p := at(e.Key())
		p.TotalTransferred = p.TotalTransferred.Add(e.Quantity)
	}

	for _, p := range positions {
		p.CurrentStock = p.TotalInward.
			Add(p.TotalReturns).
			Sub(p.TotalOutward).
			Sub(p.TotalLoss).
			Sub(p.TotalTransferred)
		if p.TotalInward.IsPositive() {
			p.AvgRate = p.inwardAmount.Div(p.TotalInward).Round(4)
		}
		p.StockValue = p.CurrentStock.Mul(p.AvgRate).Round(2)
	}

	return positions
}

// Sorted returns the positions ordered by material name, then grade.
func Sorted(positions map[register.MaterialKey]*StockPosition) []*StockPosition {
	out := make([]*StockPosition, 0, len(positions))
	for _, p := range positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.MaterialName != out[j].Key.MaterialName {
			return out[i].Key.MaterialName < out[j].Key.MaterialName
		}
		return out[i].Key.Grade < out[j].Key.Grade
	})
	return out
}
