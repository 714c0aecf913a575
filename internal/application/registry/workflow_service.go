package registry

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/domain/shared"
)

// WorkflowService runs the three numbered document registers: indents,
// material transfers and scrap. Creation assigns the business number and
// the initial status; afterwards the status is the only mutable field.
type WorkflowService struct {
	store  register.RowStore
	logger *zap.Logger
	now    func() time.Time
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(store register.RowStore, logger *zap.Logger) *WorkflowService {
	return &WorkflowService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// CreateIndent appends a new indent with a generated number and Pending
// status.
func (s *WorkflowService) CreateIndent(ctx context.Context, rec register.IndentRecord) (register.IndentRecord, error) {
	if err := requireMaterial(rec.MaterialName); err != nil {
		return register.IndentRecord{}, err
	}
	if !rec.QuantityIndented.IsPositive() {
		return register.IndentRecord{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}

	rec.IndentNo = register.NewBusinessNumber(register.IndentNumberPrefix, s.now())
	rec.Status = register.IndentStatusPending
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	if err := s.store.Append(ctx, register.RegisterIndent, rec.Row()); err != nil {
		return register.IndentRecord{}, err
	}

	s.logger.Info("indent created",
		zap.String("indent_no", rec.IndentNo),
		zap.String("material", rec.MaterialName))
	return rec, nil
}

// ListIndents returns all indents, optionally filtered by status.
func (s *WorkflowService) ListIndents(ctx context.Context, status string) ([]register.IndentRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterIndent)
	if err != nil {
		return nil, err
	}
	var out []register.IndentRecord
	for _, rec := range register.ParseIndentRows(rows) {
		if status == "" || strings.EqualFold(rec.Status, status) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// UpdateIndentStatus sets the status of the indent with the given number.
func (s *WorkflowService) UpdateIndentStatus(ctx context.Context, indentNo, status string) error {
	if !register.ValidIndentStatus(status) {
		return shared.NewDomainError("INVALID_INPUT", "Invalid indent status: "+status)
	}
	return s.updateStatus(ctx, register.RegisterIndent, "Indent No", indentNo, status)
}

// CreateTransfer appends a new material transfer with a generated number
// and Pending status.
func (s *WorkflowService) CreateTransfer(ctx context.Context, rec register.TransferRecord) (register.TransferRecord, error) {
	if err := requireMaterial(rec.MaterialName); err != nil {
		return register.TransferRecord{}, err
	}
	if !rec.Quantity.IsPositive() {
		return register.TransferRecord{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if strings.TrimSpace(rec.FromLocation) == "" || strings.TrimSpace(rec.ToLocation) == "" {
		return register.TransferRecord{}, shared.NewDomainError("INVALID_INPUT", "From and to locations are required")
	}

	rec.TransferNo = register.NewBusinessNumber(register.TransferNumberPrefix, s.now())
	rec.Status = register.TransferStatusPending
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	if err := s.store.Append(ctx, register.RegisterTransfer, rec.Row()); err != nil {
		return register.TransferRecord{}, err
	}

	s.logger.Info("transfer created",
		zap.String("transfer_no", rec.TransferNo),
		zap.String("material", rec.MaterialName),
		zap.String("to", rec.ToLocation))
	return rec, nil
}

// ListTransfers returns all transfers, optionally filtered by status.
func (s *WorkflowService) ListTransfers(ctx context.Context, status string) ([]register.TransferRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterTransfer)
	if err != nil {
		return nil, err
	}
	var out []register.TransferRecord
	for _, rec := range register.ParseTransferRows(rows) {
		if status == "" || strings.EqualFold(rec.Status, status) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// UpdateTransferStatus sets the status of the transfer with the given number.
func (s *WorkflowService) UpdateTransferStatus(ctx context.Context, transferNo, status string) error {
	if !register.ValidTransferStatus(status) {
		return shared.NewDomainError("INVALID_INPUT", "Invalid transfer status: "+status)
	}
	return s.updateStatus(ctx, register.RegisterTransfer, "Transfer No", transferNo, status)
}

// CreateScrap appends a new scrap entry with a generated number and Stored
// status.
func (s *WorkflowService) CreateScrap(ctx context.Context, rec register.ScrapRecord) (register.ScrapRecord, error) {
	if strings.TrimSpace(rec.ScrapItem) == "" {
		return register.ScrapRecord{}, shared.NewDomainError("INVALID_INPUT", "Scrap item is required")
	}
	if !rec.Quantity.IsPositive() {
		return register.ScrapRecord{}, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}

	rec.ScrapNo = register.NewBusinessNumber(register.ScrapNumberPrefix, s.now())
	rec.Status = register.ScrapStatusStored
	if rec.Date.IsZero() {
		rec.Date = s.now()
	}

	if err := s.store.Append(ctx, register.RegisterScrap, rec.Row()); err != nil {
		return register.ScrapRecord{}, err
	}

	s.logger.Info("scrap entry created",
		zap.String("scrap_no", rec.ScrapNo),
		zap.String("item", rec.ScrapItem))
	return rec, nil
}

// ListScrap returns all scrap entries, optionally filtered by status.
func (s *WorkflowService) ListScrap(ctx context.Context, status string) ([]register.ScrapRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterScrap)
	if err != nil {
		return nil, err
	}
	var out []register.ScrapRecord
	for _, rec := range register.ParseScrapRows(rows) {
		if status == "" || strings.EqualFold(rec.Status, status) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// UpdateScrapStatus sets the status of the scrap entry with the given number.
func (s *WorkflowService) UpdateScrapStatus(ctx context.Context, scrapNo, status string) error {
	if !register.ValidScrapStatus(status) {
		return shared.NewDomainError("INVALID_INPUT", "Invalid scrap status: "+status)
	}
	return s.updateStatus(ctx, register.RegisterScrap, "Scrap No", scrapNo, status)
}

// updateStatus resolves the row by business key from a fresh scan and
// overwrites its Status cell. Scanning immediately before the write keeps
// the positional update valid after earlier rows were added or removed.
func (s *WorkflowService) updateStatus(ctx context.Context, reg register.Register, keyColumn, key, status string) error {
	rows, err := s.store.ReadAll(ctx, reg)
	if err != nil {
		return err
	}

	idx := findRowByValue(rows, reg.ColumnIndex(keyColumn), key)
	if idx < 0 {
		return shared.NewDomainError("NOT_FOUND", "Document not found: "+key)
	}

	if err := s.store.UpdateCell(ctx, reg, idx, "Status", status); err != nil {
		return err
	}

	s.logger.Info("status updated",
		zap.String("register", string(reg)),
		zap.String("number", key),
		zap.String("status", status))
	return nil
}
