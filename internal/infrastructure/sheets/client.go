package sheets

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/infrastructure/config"
)

// Client persists registers in a Google Spreadsheet, one sheet per
// register. It implements register.RowStore.
//
// Sheets are created lazily with their header row on first access. A header
// row that drifted from the register schema is rewritten in place; data
// rows are never touched by the reconciliation.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger

	mu       sync.Mutex
	sheetIDs map[register.Register]int64 // populated by ensureSheet
}

// NewClient builds a client from the sheets configuration. Credentials may
// be inline JSON or a service-account file path.
func NewClient(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(sheetsapi.SpreadsheetsScope)}
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
		sheetIDs:      make(map[register.Register]int64),
	}, nil
}

// ensureSheet creates the register's sheet with its header row if the
// spreadsheet does not have it yet, and caches the numeric sheet ID.
func (c *Client) ensureSheet(ctx context.Context, reg register.Register) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id, ok := c.sheetIDs[reg]; ok {
		return id, nil
	}

	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, s := range ss.Sheets {
		if s.Properties.Title == reg.SheetName() {
			c.sheetIDs[reg] = s.Properties.SheetId
			return s.Properties.SheetId, nil
		}
	}

	resp, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: reg.SheetName()},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("create sheet %s: %w", reg.SheetName(), err)
	}

	id := resp.Replies[0].AddSheet.Properties.SheetId
	c.sheetIDs[reg] = id

	if err := c.writeHeader(ctx, reg); err != nil {
		return 0, err
	}
	c.logger.Info("created register sheet", zap.String("sheet", reg.SheetName()))
	return id, nil
}

// writeHeader overwrites row 1 with the register's header.
func (c *Client) writeHeader(ctx context.Context, reg register.Register) error {
	_, err := c.svc.Spreadsheets.Values.Update(
		c.spreadsheetID,
		fmt.Sprintf("'%s'!A1", reg.SheetName()),
		&sheetsapi.ValueRange{Values: []([]interface{}){toInterfaces(reg.Header())}},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header %s: %w", reg.SheetName(), err)
	}
	return nil
}

// ReadAll returns the register's data rows. The header row is verified
// against the register schema and rewritten when it drifted.
func (c *Client) ReadAll(ctx context.Context, reg register.Register) ([][]string, error) {
	if _, err := c.ensureSheet(ctx, reg); err != nil {
		return nil, err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(
		c.spreadsheetID,
		fmt.Sprintf("'%s'", reg.SheetName()),
	).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", reg.SheetName(), err)
	}

	if len(resp.Values) == 0 {
		if err := c.writeHeader(ctx, reg); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if !headerMatches(resp.Values[0], reg.Header()) {
		c.logger.Warn("register header drifted, rewriting",
			zap.String("sheet", reg.SheetName()))
		if err := c.writeHeader(ctx, reg); err != nil {
			return nil, err
		}
	}

	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		rows = append(rows, toStrings(raw))
	}
	return rows, nil
}

// Append adds one row at the end of the register.
func (c *Client) Append(ctx context.Context, reg register.Register, row []string) error {
	return c.AppendAll(ctx, reg, [][]string{row})
}

// AppendAll adds all rows in one values.append call, so a batch lands
// entirely or not at all.
func (c *Client) AppendAll(ctx context.Context, reg register.Register, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	if _, err := c.ensureSheet(ctx, reg); err != nil {
		return err
	}

	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, toInterfaces(row))
	}

	_, err := c.svc.Spreadsheets.Values.Append(
		c.spreadsheetID,
		fmt.Sprintf("'%s'!A1", reg.SheetName()),
		&sheetsapi.ValueRange{Values: values},
	).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append %s: %w", reg.SheetName(), err)
	}
	return nil
}

// UpdateCell overwrites the named column of one data row. rowIndex is
// zero-based over data rows; the sheet row is offset by the header.
func (c *Client) UpdateCell(ctx context.Context, reg register.Register, rowIndex int, column, value string) error {
	col := reg.ColumnIndex(column)
	if col < 0 {
		return fmt.Errorf("register %s has no column %q", reg, column)
	}
	if _, err := c.ensureSheet(ctx, reg); err != nil {
		return err
	}

	cellRef := fmt.Sprintf("'%s'!%s%d", reg.SheetName(), columnLetter(col), rowIndex+2)
	_, err := c.svc.Spreadsheets.Values.Update(
		c.spreadsheetID,
		cellRef,
		&sheetsapi.ValueRange{Values: []([]interface{}){{value}}},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", cellRef, err)
	}
	return nil
}

// Rewrite clears the register and writes the header followed by rows.
func (c *Client) Rewrite(ctx context.Context, reg register.Register, rows [][]string) error {
	if _, err := c.ensureSheet(ctx, reg); err != nil {
		return err
	}

	_, err := c.svc.Spreadsheets.Values.Clear(
		c.spreadsheetID,
		fmt.Sprintf("'%s'", reg.SheetName()),
		&sheetsapi.ClearValuesRequest{},
	).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear %s: %w", reg.SheetName(), err)
	}

	values := make([][]interface{}, 0, len(rows)+1)
	values = append(values, toInterfaces(reg.Header()))
	for _, row := range rows {
		values = append(values, toInterfaces(row))
	}

	_, err = c.svc.Spreadsheets.Values.Update(
		c.spreadsheetID,
		fmt.Sprintf("'%s'!A1", reg.SheetName()),
		&sheetsapi.ValueRange{Values: values},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("rewrite %s: %w", reg.SheetName(), err)
	}
	return nil
}

// DeleteRow removes one data row.
func (c *Client) DeleteRow(ctx context.Context, reg register.Register, rowIndex int) error {
	sheetID, err := c.ensureSheet(ctx, reg)
	if err != nil {
		return err
	}

	// Dimension indexes are zero-based over all rows, header included.
	start := int64(rowIndex + 1)
	_, err = c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: start,
					EndIndex:   start + 1,
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("delete row %d of %s: %w", rowIndex, reg.SheetName(), err)
	}
	return nil
}

func headerMatches(raw []interface{}, want []string) bool {
	if len(raw) != len(want) {
		return false
	}
	for i, v := range raw {
		if fmt.Sprint(v) != want[i] {
			return false
		}
	}
	return true
}

func toInterfaces(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// columnLetter converts a zero-based column index to A1 notation.
func columnLetter(i int) string {
	s := ""
	for i >= 0 {
		s = string(rune('A'+i%26)) + s
		i = i/26 - 1
	}
	return s
}

var _ register.RowStore = (*Client)(nil)
