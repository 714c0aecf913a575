package stock

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/ledger"
	"github.com/sitestock/backend/internal/domain/register"
)

// ClosingService generates and persists the daily closing register.
type ClosingService struct {
	store  register.RowStore
	stock  *StockService
	logger *zap.Logger
}

// NewClosingService creates a new ClosingService.
func NewClosingService(store register.RowStore, stock *StockService, logger *zap.Logger) *ClosingService {
	return &ClosingService{store: store, stock: stock, logger: logger}
}

// Generate derives the closing lines for the date without persisting them.
func (s *ClosingService) Generate(ctx context.Context, date time.Time) ([]register.ClosingRecord, error) {
	m, err := s.stock.Movements(ctx)
	if err != nil {
		return nil, err
	}
	positions := ledger.Aggregate(m)
	return ledger.BuildDailyClosing(positions, m, date), nil
}

// Save generates the closing lines for the date and persists them,
// replacing any rows previously saved for the same date. Other dates'
// rows are carried over untouched.
func (s *ClosingService) Save(ctx context.Context, date time.Time) ([]register.ClosingRecord, error) {
	records, err := s.Generate(ctx, date)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.ReadAll(ctx, register.RegisterDailyClosing)
	if err != nil {
		return nil, err
	}

	day := date.Format(register.DateLayout)
	kept := make([][]string, 0, len(existing)+len(records))
	for _, row := range existing {
		if len(row) > 0 && strings.TrimSpace(row[0]) == day {
			continue
		}
		kept = append(kept, row)
	}
	for _, r := range records {
		kept = append(kept, r.Row())
	}

	if err := s.store.Rewrite(ctx, register.RegisterDailyClosing, kept); err != nil {
		return nil, err
	}

	s.logger.Info("daily closing saved",
		zap.String("date", day),
		zap.Int("lines", len(records)))
	return records, nil
}

// List returns saved closing lines, optionally restricted to one date
// (YYYY-MM-DD).
func (s *ClosingService) List(ctx context.Context, date string) ([]register.ClosingRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterDailyClosing)
	if err != nil {
		return nil, err
	}
	var out []register.ClosingRecord
	for _, rec := range register.ParseClosingRows(rows) {
		if date == "" || rec.Date.Format(register.DateLayout) == date {
			out = append(out, rec)
		}
	}
	return out, nil
}
