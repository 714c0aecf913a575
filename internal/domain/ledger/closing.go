package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitestock/backend/internal/domain/register"
)

// BuildDailyClosing derives a closing line for every ledger key on the
// given date. Closing stock is the current position; opening stock is
// reconstructed by undoing that date's movements:
//
//	opening = current - received - returned + issued + losses
func BuildDailyClosing(
	positions map[register.MaterialKey]*StockPosition,
	m Movements,
	date time.Time,
) []register.ClosingRecord {
	day := date.Format(register.DateLayout)
	sameDay := func(t time.Time) bool { return t.Format(register.DateLayout) == day }

	received := make(map[register.MaterialKey]decimal.Decimal)
	issued := make(map[register.MaterialKey]decimal.Decimal)
	returned := make(map[register.MaterialKey]decimal.Decimal)
	losses := make(map[register.MaterialKey]decimal.Decimal)

	for _, e := range m.Inward {
		if sameDay(e.Date) {
			received[e.Key()] = received[e.Key()].Add(e.Quantity)
		}
	}
	for _, e := range m.Outward {
		if sameDay(e.Date) {
			issued[e.Key()] = issued[e.Key()].Add(e.Quantity)
		}
	}
	for _, e := range m.Returns {
		if sameDay(e.Date) {
			returned[e.Key()] = returned[e.Key()].Add(e.Quantity)
		}
	}
	for _, e := range m.Damage {
		if sameDay(e.Date) {
			losses[e.Key()] = losses[e.Key()].Add(e.Quantity)
		}
	}

	sorted := Sorted(positions)
	rows := make([]register.ClosingRecord, 0, len(sorted))
	for _, p := range sorted {
		k := p.Key
		opening := p.CurrentStock.
			Sub(received[k]).
			Sub(returned[k]).
			Add(issued[k]).
			Add(losses[k])
		rows = append(rows, register.ClosingRecord{
			Date:         date,
			MaterialName: k.MaterialName,
			Grade:        k.Grade,
			Opening:      opening,
			Received:     received[k],
			Issued:       issued[k],
			Returns:      returned[k],
			Losses:       losses[k],
			Closing:      p.CurrentStock,
		})
	}
	return rows
}
