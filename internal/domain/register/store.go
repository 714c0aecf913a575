package register

import "context"

// RowStore is the narrow persistence port every register goes through.
// Implementations are expected to create a missing sheet with the
// register's header row on first read, and to rewrite a drifted header
// row back to Register.Header.
//
// Row indexes are zero-based over data rows; the header row is never
// addressable.
type RowStore interface {
	// ReadAll returns every data row of the register, header excluded.
	ReadAll(ctx context.Context, reg Register) ([][]string, error)

	// Append adds one row at the end of the register.
	Append(ctx context.Context, reg Register, row []string) error

	// AppendAll adds all rows in a single backend call. Either every row
	// is persisted or none is.
	AppendAll(ctx context.Context, reg Register, rows [][]string) error

	// UpdateCell overwrites the named column of one data row.
	UpdateCell(ctx context.Context, reg Register, rowIndex int, column, value string) error

	// Rewrite clears the register and writes the header followed by rows.
	Rewrite(ctx context.Context, reg Register, rows [][]string) error

	// DeleteRow removes one data row.
	DeleteRow(ctx context.Context, reg Register, rowIndex int) error
}

// ColumnIndex returns the position of a header column in the register,
// or -1 when the register has no such column.
func (r Register) ColumnIndex(column string) int {
	for i, h := range headers[r] {
		if h == column {
			return i
		}
	}
	return -1
}
