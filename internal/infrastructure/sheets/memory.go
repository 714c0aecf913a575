package sheets

import (
	"context"
	"fmt"
	"sync"

	"github.com/sitestock/backend/internal/domain/register"
)

// MemoryStore keeps all registers in process memory. It backs development
// setups and tests, behind the same port as the spreadsheet client.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[register.Register][][]string
}

// NewMemoryStore creates an empty in-memory register store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[register.Register][][]string),
	}
}

// ReadAll returns a copy of the register's data rows.
func (s *MemoryStore) ReadAll(ctx context.Context, reg register.Register) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.data[reg]
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

// Append adds one row at the end of the register.
func (s *MemoryStore) Append(ctx context.Context, reg register.Register, row []string) error {
	return s.AppendAll(ctx, reg, [][]string{row})
}

// AppendAll adds all rows at once.
func (s *MemoryStore) AppendAll(ctx context.Context, reg register.Register, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range rows {
		s.data[reg] = append(s.data[reg], append([]string(nil), row...))
	}
	return nil
}

// UpdateCell overwrites the named column of one data row.
func (s *MemoryStore) UpdateCell(ctx context.Context, reg register.Register, rowIndex int, column, value string) error {
	col := reg.ColumnIndex(column)
	if col < 0 {
		return fmt.Errorf("register %s has no column %q", reg, column)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.data[reg]
	if rowIndex < 0 || rowIndex >= len(rows) {
		return fmt.Errorf("row %d out of range for register %s", rowIndex, reg)
	}
	row := rows[rowIndex]
	for len(row) <= col {
		row = append(row, "")
	}
	row[col] = value
	rows[rowIndex] = row
	return nil
}

// Rewrite replaces the register's data rows wholesale.
func (s *MemoryStore) Rewrite(ctx context.Context, reg register.Register, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	s.data[reg] = out
	return nil
}

// DeleteRow removes one data row.
func (s *MemoryStore) DeleteRow(ctx context.Context, reg register.Register, rowIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.data[reg]
	if rowIndex < 0 || rowIndex >= len(rows) {
		return fmt.Errorf("row %d out of range for register %s", rowIndex, reg)
	}
	s.data[reg] = append(rows[:rowIndex], rows[rowIndex+1:]...)
	return nil
}

var _ register.RowStore = (*MemoryStore)(nil)
