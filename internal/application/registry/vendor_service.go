package registry

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/domain/shared"
)

// VendorService manages the vendor directory.
type VendorService struct {
	store  register.RowStore
	logger *zap.Logger
	now    func() time.Time
}

// NewVendorService creates a new VendorService.
func NewVendorService(store register.RowStore, logger *zap.Logger) *VendorService {
	return &VendorService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// List returns every vendor in the directory.
func (s *VendorService) List(ctx context.Context) ([]register.VendorRecord, error) {
	rows, err := s.store.ReadAll(ctx, register.RegisterVendor)
	if err != nil {
		return nil, err
	}
	return register.ParseVendorRows(rows), nil
}

// Add validates and appends a vendor. Vendor names are unique,
// case-insensitively.
func (s *VendorService) Add(ctx context.Context, rec register.VendorRecord) (register.VendorRecord, error) {
	if err := rec.Validate(); err != nil {
		return register.VendorRecord{}, err
	}

	existing, err := s.List(ctx)
	if err != nil {
		return register.VendorRecord{}, err
	}
	for _, v := range existing {
		if strings.EqualFold(v.VendorName, rec.VendorName) {
			return register.VendorRecord{}, shared.NewDomainError("ALREADY_EXISTS", "Vendor already exists: "+rec.VendorName)
		}
	}

	rec.DateAdded = s.now()
	if err := s.store.Append(ctx, register.RegisterVendor, rec.Row()); err != nil {
		return register.VendorRecord{}, err
	}

	s.logger.Info("vendor added", zap.String("vendor", rec.VendorName))
	return rec, nil
}

// Delete removes the vendor matching the given name. The row index is
// resolved from a fresh scan immediately before the delete.
func (s *VendorService) Delete(ctx context.Context, name string) error {
	rows, err := s.store.ReadAll(ctx, register.RegisterVendor)
	if err != nil {
		return err
	}

	idx := findRowByValue(rows, register.RegisterVendor.ColumnIndex("Vendor Name"), name)
	if idx < 0 {
		return shared.NewDomainError("NOT_FOUND", "Vendor not found: "+name)
	}

	if err := s.store.DeleteRow(ctx, register.RegisterVendor, idx); err != nil {
		return err
	}

	s.logger.Info("vendor deleted", zap.String("vendor", name))
	return nil
}

// findRowByValue locates the first data row whose cell at col equals value,
// compared case-insensitively after trimming. Returns -1 when absent.
func findRowByValue(rows [][]string, col int, value string) int {
	if col < 0 {
		return -1
	}
	want := strings.TrimSpace(value)
	for i, row := range rows {
		if col >= len(row) {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(row[col]), want) {
			return i
		}
	}
	return -1
}
