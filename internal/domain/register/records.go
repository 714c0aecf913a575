package register

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitestock/backend/internal/domain/shared"
)

// VendorRecord is one row of the Vendor Master register.
type VendorRecord struct {
	VendorName    string    `json:"vendor_name"`
	Material      string    `json:"material"`
	MaterialName  string    `json:"material_name"`
	Grade         string    `json:"grade"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	GSTNumber     string    `json:"gst_number"`
	Address       string    `json:"address"`
	DateAdded     time.Time `json:"date_added"`
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate enforces the vendor directory rules: name, contact person and a
// 10-digit phone are required; email, when present, must look like an email.
func (v VendorRecord) Validate() error {
	if strings.TrimSpace(v.VendorName) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Vendor name is required")
	}
	if strings.TrimSpace(v.ContactPerson) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Contact person is required")
	}
	if len(digitsOnly(v.Phone)) != 10 {
		return shared.NewDomainError("INVALID_INPUT", "Phone must be a 10-digit number")
	}
	if v.Email != "" && !emailPattern.MatchString(v.Email) {
		return shared.NewDomainError("INVALID_INPUT", "Email address is not valid")
	}
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// InwardRecord is one row of the Inward Register. Amount is derived as
// Quantity multiplied by Rate. MfgDate and ExpiryDate are optional and left
// as zero times when absent.
type InwardRecord struct {
	Date          time.Time       `json:"date"`
	MaterialName  string          `json:"material_name"`
	Material      string          `json:"material"`
	Grade         string          `json:"grade"`
	Vendor        string          `json:"vendor"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	InvoiceNumber string          `json:"invoice_number"`
	ReceivedBy    string          `json:"received_by"`
	MfgDate       time.Time       `json:"mfg_date"`
	ExpiryDate    time.Time       `json:"expiry_date"`
	Remarks       string          `json:"remarks"`
}

// Key returns the ledger key of the entry.
func (r InwardRecord) Key() MaterialKey {
	return NewMaterialKey(r.MaterialName, r.Grade)
}

// OutwardRecord is one row of the Outward Register.
type OutwardRecord struct {
	Date         time.Time       `json:"date"`
	MaterialName string          `json:"material_name"`
	Material     string          `json:"material"`
	Grade        string          `json:"grade"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	IssuedTo     string          `json:"issued_to"`
	Purpose      string          `json:"purpose"`
	Remarks      string          `json:"remarks"`
}

func (r OutwardRecord) Key() MaterialKey {
	return NewMaterialKey(r.MaterialName, r.Grade)
}

// ReturnRecord is one row of the Returns Register.
type ReturnRecord struct {
	Date         time.Time       `json:"date"`
	MaterialName string          `json:"material_name"`
	Grade        string          `json:"grade"`
	ReturnedBy   string          `json:"returned_by"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	Reason       string          `json:"reason"`
	Remarks      string          `json:"remarks"`
}

func (r ReturnRecord) Key() MaterialKey {
	return NewMaterialKey(r.MaterialName, r.Grade)
}

// DamageRecord is one row of the Damage Loss Register.
type DamageRecord struct {
	Date         time.Time       `json:"date"`
	MaterialName string          `json:"material_name"`
	Grade        string          `json:"grade"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	Reason       string          `json:"reason"`
	ReportedBy   string          `json:"reported_by"`
	Remarks      string          `json:"remarks"`
}

func (r DamageRecord) Key() MaterialKey {
	return NewMaterialKey(r.MaterialName, r.Grade)
}

// TransferRecord is one row of the Material Transfer Register.
// Status is the only field mutated after creation.
type TransferRecord struct {
	TransferNo   string          `json:"transfer_no"`
	Date         time.Time       `json:"date"`
	FromLocation string          `json:"from_location"`
	ToLocation   string          `json:"to_location"`
	MaterialName string          `json:"material_name"`
	Grade        string          `json:"grade"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	Status       string          `json:"status"`
	Remarks      string          `json:"remarks"`
}

func (r TransferRecord) Key() MaterialKey {
	return NewMaterialKey(r.MaterialName, r.Grade)
}

// ScrapRecord is one row of the Scrap Register.
type ScrapRecord struct {
	ScrapNo        string          `json:"scrap_no"`
	Date           time.Time       `json:"date"`
	ScrapItem      string          `json:"scrap_item"`
	MaterialSource string          `json:"material_source"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	ScrapValue     decimal.Decimal `json:"scrap_value"`
	Status         string          `json:"status"`
	Remarks        string          `json:"remarks"`
}

// IndentRecord is one row of the Indent Register.
type IndentRecord struct {
	IndentNo         string          `json:"indent_no"`
	Date             time.Time       `json:"date"`
	MaterialName     string          `json:"material_name"`
	Grade            string          `json:"grade"`
	QuantityIndented decimal.Decimal `json:"quantity_indented"`
	Unit             string          `json:"unit"`
	Purpose          string          `json:"purpose"`
	RequestedBy      string          `json:"requested_by"`
	Status           string          `json:"status"`
}

// BOQRecord is one row of the BOQ Mapping register.
type BOQRecord struct {
	BOQItem           string          `json:"boq_item"`
	Description       string          `json:"description"`
	MaterialName      string          `json:"material_name"`
	Grade             string          `json:"grade"`
	QuantityAllocated decimal.Decimal `json:"quantity_allocated"`
	Unit              string          `json:"unit"`
	Remarks           string          `json:"remarks"`
}

// StockLimitRecord is one row of the Low Stock Limits register.
// At most one row may exist per (MaterialName, Grade).
type StockLimitRecord struct {
	MaterialName string          `json:"material_name"`
	Grade        string          `json:"grade"`
	Unit         string          `json:"unit"`
	Threshold    decimal.Decimal `json:"threshold"`
	SetBy        string          `json:"set_by"`
	Date         time.Time       `json:"date"`
}

func (r StockLimitRecord) Key() MaterialKey {
	return NewMaterialKey(r.MaterialName, r.Grade)
}

// ReconciliationRecord is one row of the Reconciliation Register.
type ReconciliationRecord struct {
	Date         time.Time       `json:"date"`
	MaterialName string          `json:"material_name"`
	Grade        string          `json:"grade"`
	Unit         string          `json:"unit"`
	Theoretical  decimal.Decimal `json:"theoretical_stock"`
	Actual       decimal.Decimal `json:"actual_stock"`
	Variance     decimal.Decimal `json:"variance"`
	ReconciledBy string          `json:"reconciled_by"`
	Remarks      string          `json:"remarks"`
}

// SnapshotRecord is one row of the Stock Snapshot register. The snapshot
// sheet is rewritten wholesale on every refresh.
type SnapshotRecord struct {
	MaterialName string          `json:"material_name"`
	Grade        string          `json:"grade"`
	Unit         string          `json:"unit"`
	TotalInward  decimal.Decimal `json:"total_inward"`
	TotalOutward decimal.Decimal `json:"total_outward"`
	TotalReturns decimal.Decimal `json:"total_returns"`
	TotalLoss    decimal.Decimal `json:"total_loss"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	AvgRate      decimal.Decimal `json:"avg_rate"`
	StockValue   decimal.Decimal `json:"stock_value"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

// MaterialMasterRecord is one row of the Material Master register.
type MaterialMasterRecord struct {
	MaterialName     string    `json:"material_name"`
	MaterialCategory string    `json:"material_category"`
	Unit             string    `json:"unit"`
	Description      string    `json:"description"`
	CommonUsage      string    `json:"common_usage"`
	AddedBy          string    `json:"added_by"`
	DateAdded        time.Time `json:"date_added"`
}

// GradeMasterRecord is one row of the Grade Master register.
type GradeMasterRecord struct {
	Grade            string    `json:"grade"`
	MaterialCategory string    `json:"material_category"`
	Description      string    `json:"description"`
	CommonUsage      string    `json:"common_usage"`
	AddedBy          string    `json:"added_by"`
	DateAdded        time.Time `json:"date_added"`
}

// ClosingRecord is one row of the Daily Closing register.
type ClosingRecord struct {
	Date         time.Time       `json:"date"`
	MaterialName string          `json:"material_name"`
	Grade        string          `json:"grade"`
	Opening      decimal.Decimal `json:"opening_stock"`
	Received     decimal.Decimal `json:"received"`
	Issued       decimal.Decimal `json:"issued"`
	Returns      decimal.Decimal `json:"returns"`
	Losses       decimal.Decimal `json:"losses"`
	Closing      decimal.Decimal `json:"closing_stock"`
}

func (r ClosingRecord) Key() MaterialKey {
	return NewMaterialKey(r.MaterialName, r.Grade)
}
