package register

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitestock/backend/internal/domain/shared"
)

// TimestampLayout is the wire format for point-in-time fields such as the
// snapshot generation time.
const TimestampLayout = "2006-01-02 15:04:05"

// cell returns the trimmed value at index i, or "" when the row is short.
// Trailing blank cells are routinely dropped by the spreadsheet backend.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// parseDate parses a required date cell.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_INPUT", "Date is not in YYYY-MM-DD format: "+s)
	}
	return t, nil
}

// parseDateOptional parses an optional date cell. Blank or unparseable
// values yield the zero time rather than an error.
func parseDateOptional(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseDecimal parses a numeric cell. Blank means zero; anything
// non-numeric is an error so that callers can skip the row.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_INPUT", "Value is not numeric: "+s)
	}
	return d, nil
}

// Row renders the record in Vendor Master column order.
func (v VendorRecord) Row() []string {
	return []string{
		v.VendorName, v.Material, v.MaterialName, v.Grade, v.ContactPerson,
		v.Phone, v.Email, v.GSTNumber, v.Address, formatDate(v.DateAdded),
	}
}

// ParseVendorRow decodes one Vendor Master row.
func ParseVendorRow(row []string) (VendorRecord, error) {
	if cell(row, 0) == "" {
		return VendorRecord{}, shared.NewDomainError("INVALID_INPUT", "Vendor name is missing")
	}
	return VendorRecord{
		VendorName:    cell(row, 0),
		Material:      cell(row, 1),
		MaterialName:  cell(row, 2),
		Grade:         cell(row, 3),
		ContactPerson: cell(row, 4),
		Phone:         cell(row, 5),
		Email:         cell(row, 6),
		GSTNumber:     cell(row, 7),
		Address:       cell(row, 8),
		DateAdded:     parseDateOptional(cell(row, 9)),
	}, nil
}

// Row renders the record in Inward Register column order.
func (r InwardRecord) Row() []string {
	return []string{
		formatDate(r.Date), r.MaterialName, r.Material, r.Grade, r.Vendor,
		r.Quantity.String(), r.Unit, r.Rate.String(), r.Amount.String(),
		r.InvoiceNumber, r.ReceivedBy, formatDate(r.MfgDate),
		formatDate(r.ExpiryDate), r.Remarks,
	}
}

// ParseInwardRow decodes one Inward Register row. Rows with an unparseable
// date, quantity or rate fail so the aggregator can skip them.
func ParseInwardRow(row []string) (InwardRecord, error) {
	date, err := parseDate(cell(row, 0))
	if err != nil {
		return InwardRecord{}, err
	}
	qty, err := parseDecimal(cell(row, 5))
	if err != nil {
		return InwardRecord{}, err
	}
	rate, err := parseDecimal(cell(row, 7))
	if err != nil {
		return InwardRecord{}, err
	}
	amount, err := parseDecimal(cell(row, 8))
	if err != nil {
		return InwardRecord{}, err
	}
	return InwardRecord{
		Date:          date,
		MaterialName:  cell(row, 1),
		Material:      cell(row, 2),
		Grade:         cell(row, 3),
		Vendor:        cell(row, 4),
		Quantity:      qty,
		Unit:          cell(row, 6),
		Rate:          rate,
		Amount:        amount,
		InvoiceNumber: cell(row, 9),
		ReceivedBy:    cell(row, 10),
		MfgDate:       parseDateOptional(cell(row, 11)),
		ExpiryDate:    parseDateOptional(cell(row, 12)),
		Remarks:       cell(row, 13),
	}, nil
}

// Row renders the record in Outward Register column order.
func (r OutwardRecord) Row() []string {
	return []string{
		formatDate(r.Date), r.MaterialName, r.Material, r.Grade,
		r.Quantity.String(), r.Unit, r.IssuedTo, r.Purpose, r.Remarks,
	}
}

// ParseOutwardRow decodes one Outward Register row.
func ParseOutwardRow(row []string) (OutwardRecord, error) {
	date, err := parseDate(cell(row, 0))
	if err != nil {
		return OutwardRecord{}, err
	}
	qty, err := parseDecimal(cell(row, 4))
	if err != nil {
		return OutwardRecord{}, err
	}
	return OutwardRecord{
		Date:         date,
		MaterialName: cell(row, 1),
		Material:     cell(row, 2),
		Grade:        cell(row, 3),
		Quantity:     qty,
		Unit:         cell(row, 5),
		IssuedTo:     cell(row, 6),
		Purpose:      cell(row, 7),
		Remarks:      cell(row, 8),
	}, nil
}

// Row renders the record in Returns Register column order.
func (r ReturnRecord) Row() []string {
	return []string{
		formatDate(r.Date), r.MaterialName, r.Grade, r.ReturnedBy,
		r.Quantity.String(), r.Unit, r.Reason, r.Remarks,
	}
}

// ParseReturnRow decodes one Returns Register row.
func ParseReturnRow(row []string) (ReturnRecord, error) {
	date, err := parseDate(cell(row, 0))
	if err != nil {
		return ReturnRecord{}, err
	}
	qty, err := parseDecimal(cell(row, 4))
	if err != nil {
		return ReturnRecord{}, err
	}
	return ReturnRecord{
		Date:         date,
		MaterialName: cell(row, 1),
		Grade:        cell(row, 2),
		ReturnedBy:   cell(row, 3),
		Quantity:     qty,
		Unit:         cell(row, 5),
		Reason:       cell(row, 6),
		Remarks:      cell(row, 7),
	}, nil
}

// Row renders the record in Damage Loss Register column order.
func (r DamageRecord) Row() []string {
	return []string{
		formatDate(r.Date), r.MaterialName, r.Grade, r.Quantity.String(),
		r.Unit, r.Reason, r.ReportedBy, r.Remarks,
	}
}

// ParseDamageRow decodes one Damage Loss Register row.
func ParseDamageRow(row []string) (DamageRecord, error) {
	date, err := parseDate(cell(row, 0))
	if err != nil {
		return DamageRecord{}, err
	}
	qty, err := parseDecimal(cell(row, 3))
	if err != nil {
		return DamageRecord{}, err
	}
	return DamageRecord{
		Date:         date,
		MaterialName: cell(row, 1),
		Grade:        cell(row, 2),
		Quantity:     qty,
		Unit:         cell(row, 4),
		Reason:       cell(row, 5),
		ReportedBy:   cell(row, 6),
		Remarks:      cell(row, 7),
	}, nil
}

// Row renders the record in Material Transfer Register column order.
func (r TransferRecord) Row() []string {
	return []string{
		r.TransferNo, formatDate(r.Date), r.FromLocation, r.ToLocation,
		r.MaterialName, r.Grade, r.Quantity.String(), r.Unit, r.Status,
		r.Remarks,
	}
}

// ParseTransferRow decodes one Material Transfer Register row.
func ParseTransferRow(row []string) (TransferRecord, error) {
	if cell(row, 0) == "" {
		return TransferRecord{}, shared.NewDomainError("INVALID_INPUT", "Transfer number is missing")
	}
	date, err := parseDate(cell(row, 1))
	if err != nil {
		return TransferRecord{}, err
	}
	qty, err := parseDecimal(cell(row, 6))
	if err != nil {
		return TransferRecord{}, err
	}
	return TransferRecord{
		TransferNo:   cell(row, 0),
		Date:         date,
		FromLocation: cell(row, 2),
		ToLocation:   cell(row, 3),
		MaterialName: cell(row, 4),
		Grade:        cell(row, 5),
		Quantity:     qty,
		Unit:         cell(row, 7),
		Status:       cell(row, 8),
		Remarks:      cell(row, 9),
	}, nil
}

// Row renders the record in Scrap Register column order.
func (r ScrapRecord) Row() []string {
	return []string{
		r.ScrapNo, formatDate(r.Date), r.ScrapItem, r.MaterialSource,
		r.Quantity.String(), r.Unit, r.ScrapValue.String(), r.Status,
		r.Remarks,
	}
}

// ParseScrapRow decodes one Scrap Register row.
func ParseScrapRow(row []string) (ScrapRecord, error) {
	if cell(row, 0) == "" {
		return ScrapRecord{}, shared.NewDomainError("INVALID_INPUT", "Scrap number is missing")
	}
	date, err := parseDate(cell(row, 1))
	if err != nil {
		return ScrapRecord{}, err
	}
	qty, err := parseDecimal(cell(row, 4))
	if err != nil {
		return ScrapRecord{}, err
	}
	value, err := parseDecimal(cell(row, 6))
	if err != nil {
		return ScrapRecord{}, err
	}
	return ScrapRecord{
		ScrapNo:        cell(row, 0),
		Date:           date,
		ScrapItem:      cell(row, 2),
		MaterialSource: cell(row, 3),
		Quantity:       qty,
		Unit:           cell(row, 5),
		ScrapValue:     value,
		Status:         cell(row, 7),
		Remarks:        cell(row, 8),
	}, nil
}

// Row renders the record in Indent Register column order.
func (r IndentRecord) Row() []string {
	return []string{
		r.IndentNo, formatDate(r.Date), r.MaterialName, r.Grade,
		r.QuantityIndented.String(), r.Unit, r.Purpose, r.RequestedBy,
		r.Status,
	}
}

// ParseIndentRow decodes one Indent Register row.
func ParseIndentRow(row []string) (IndentRecord, error) {
	if cell(row, 0) == "" {
		return IndentRecord{}, shared.NewDomainError("INVALID_INPUT", "Indent number is missing")
	}
	date, err := parseDate(cell(row, 1))
	if err != nil {
		return IndentRecord{}, err
	}
	qty, err := parseDecimal(cell(row, 4))
	if err != nil {
		return IndentRecord{}, err
	}
	return IndentRecord{
		IndentNo:         cell(row, 0),
		Date:             date,
		MaterialName:     cell(row, 2),
		Grade:            cell(row, 3),
		QuantityIndented: qty,
		Unit:             cell(row, 5),
		Purpose:          cell(row, 6),
		RequestedBy:      cell(row, 7),
		Status:           cell(row, 8),
	}, nil
}

// Row renders the record in BOQ Mapping column order.
func (r BOQRecord) Row() []string {
	return []string{
		r.BOQItem, r.Description, r.MaterialName, r.Grade,
		r.QuantityAllocated.String(), r.Unit, r.Remarks,
	}
}

// ParseBOQRow decodes one BOQ Mapping row.
func ParseBOQRow(row []string) (BOQRecord, error) {
	if cell(row, 0) == "" {
		return BOQRecord{}, shared.NewDomainError("INVALID_INPUT", "BOQ item is missing")
	}
	qty, err := parseDecimal(cell(row, 4))
	if err != nil {
		return BOQRecord{}, err
	}
	return BOQRecord{
		BOQItem:           cell(row, 0),
		Description:       cell(row, 1),
		MaterialName:      cell(row, 2),
		Grade:             cell(row, 3),
		QuantityAllocated: qty,
		Unit:              cell(row, 5),
		Remarks:           cell(row, 6),
	}, nil
}

// Row renders the record in Low Stock Limits column order.
func (r StockLimitRecord) Row() []string {
	return []string{
		r.MaterialName, r.Grade, r.Unit, r.Threshold.String(), r.SetBy,
		formatDate(r.Date),
	}
}

// ParseStockLimitRow decodes one Low Stock Limits row.
func ParseStockLimitRow(row []string) (StockLimitRecord, error) {
	if cell(row, 0) == "" {
		return StockLimitRecord{}, shared.NewDomainError("INVALID_INPUT", "Material name is missing")
	}
	threshold, err := parseDecimal(cell(row, 3))
	if err != nil {
		return StockLimitRecord{}, err
	}
	return StockLimitRecord{
		MaterialName: cell(row, 0),
		Grade:        cell(row, 1),
		Unit:         cell(row, 2),
		Threshold:    threshold,
		SetBy:        cell(row, 4),
		Date:         parseDateOptional(cell(row, 5)),
	}, nil
}

// Row renders the record in Reconciliation Register column order.
func (r ReconciliationRecord) Row() []string {
	return []string{
		formatDate(r.Date), r.MaterialName, r.Grade, r.Unit,
		r.Theoretical.String(), r.Actual.String(), r.Variance.String(),
		r.ReconciledBy, r.Remarks,
	}
}

// ParseReconciliationRow decodes one Reconciliation Register row.
func ParseReconciliationRow(row []string) (ReconciliationRecord, error) {
	date, err := parseDate(cell(row, 0))
	if err != nil {
		return ReconciliationRecord{}, err
	}
	theoretical, err := parseDecimal(cell(row, 4))
	if err != nil {
		return ReconciliationRecord{}, err
	}
	actual, err := parseDecimal(cell(row, 5))
	if err != nil {
		return ReconciliationRecord{}, err
	}
	variance, err := parseDecimal(cell(row, 6))
	if err != nil {
		return ReconciliationRecord{}, err
	}
	return ReconciliationRecord{
		Date:         date,
		MaterialName: cell(row, 1),
		Grade:        cell(row, 2),
		Unit:         cell(row, 3),
		Theoretical:  theoretical,
		Actual:       actual,
		Variance:     variance,
		ReconciledBy: cell(row, 7),
		Remarks:      cell(row, 8),
	}, nil
}

// Row renders the record in Stock Snapshot column order.
func (r SnapshotRecord) Row() []string {
	return []string{
		r.MaterialName, r.Grade, r.Unit, r.TotalInward.String(),
		r.TotalOutward.String(), r.TotalReturns.String(),
		r.TotalLoss.String(), r.CurrentStock.String(), r.AvgRate.String(),
		r.StockValue.String(), r.GeneratedAt.Format(TimestampLayout),
	}
}

// Row renders the record in Material Master column order.
func (r MaterialMasterRecord) Row() []string {
	return []string{
		r.MaterialName, r.MaterialCategory, r.Unit, r.Description,
		r.CommonUsage, r.AddedBy, formatDate(r.DateAdded),
	}
}

// ParseMaterialMasterRow decodes one Material Master row.
func ParseMaterialMasterRow(row []string) (MaterialMasterRecord, error) {
	if cell(row, 0) == "" {
		return MaterialMasterRecord{}, shared.NewDomainError("INVALID_INPUT", "Material name is missing")
	}
	return MaterialMasterRecord{
		MaterialName:     cell(row, 0),
		MaterialCategory: cell(row, 1),
		Unit:             cell(row, 2),
		Description:      cell(row, 3),
		CommonUsage:      cell(row, 4),
		AddedBy:          cell(row, 5),
		DateAdded:        parseDateOptional(cell(row, 6)),
	}, nil
}

// Row renders the record in Grade Master column order.
func (r GradeMasterRecord) Row() []string {
	return []string{
		r.Grade, r.MaterialCategory, r.Description, r.CommonUsage,
		r.AddedBy, formatDate(r.DateAdded),
	}
}

// ParseGradeMasterRow decodes one Grade Master row.
func ParseGradeMasterRow(row []string) (GradeMasterRecord, error) {
	if cell(row, 0) == "" {
		return GradeMasterRecord{}, shared.NewDomainError("INVALID_INPUT", "Grade is missing")
	}
	return GradeMasterRecord{
		Grade:            cell(row, 0),
		MaterialCategory: cell(row, 1),
		Description:      cell(row, 2),
		CommonUsage:      cell(row, 3),
		AddedBy:          cell(row, 4),
		DateAdded:        parseDateOptional(cell(row, 5)),
	}, nil
}

// Row renders the record in Daily Closing column order.
func (r ClosingRecord) Row() []string {
	return []string{
		formatDate(r.Date), r.MaterialName, r.Grade, r.Opening.String(),
		r.Received.String(), r.Issued.String(), r.Returns.String(),
		r.Losses.String(), r.Closing.String(),
	}
}

// ParseClosingRow decodes one Daily Closing row.
func ParseClosingRow(row []string) (ClosingRecord, error) {
	date, err := parseDate(cell(row, 0))
	if err != nil {
		return ClosingRecord{}, err
	}
	opening, err := parseDecimal(cell(row, 3))
	if err != nil {
		return ClosingRecord{}, err
	}
	received, err := parseDecimal(cell(row, 4))
	if err != nil {
		return ClosingRecord{}, err
	}
	issued, err := parseDecimal(cell(row, 5))
	if err != nil {
		return ClosingRecord{}, err
	}
	returns, err := parseDecimal(cell(row, 6))
	if err != nil {
		return ClosingRecord{}, err
	}
	losses, err := parseDecimal(cell(row, 7))
	if err != nil {
		return ClosingRecord{}, err
	}
	closing, err := parseDecimal(cell(row, 8))
	if err != nil {
		return ClosingRecord{}, err
	}
	return ClosingRecord{
		Date:         date,
		MaterialName: cell(row, 1),
		Grade:        cell(row, 2),
		Opening:      opening,
		Received:     received,
		Issued:       issued,
		Returns:      returns,
		Losses:       losses,
		Closing:      closing,
	}, nil
}
