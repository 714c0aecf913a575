package register

// Register identifies one logical register of the site inventory.
// Each register is persisted as a single sheet in the backing spreadsheet.
type Register string

const (
	RegisterVendor         Register = "vendor"
	RegisterInward         Register = "inward"
	RegisterOutward        Register = "outward"
	RegisterReturns        Register = "returns"
	RegisterDamage         Register = "damage"
	RegisterTransfer       Register = "transfer"
	RegisterScrap          Register = "scrap"
	RegisterIndent         Register = "indent"
	RegisterBOQ            Register = "boq"
	RegisterStockLimits    Register = "stock_limits"
	RegisterReconciliation Register = "reconciliation"
	RegisterSnapshot       Register = "snapshot"
	RegisterMaterialMaster Register = "material_master"
	RegisterGradeMaster    Register = "grade_master"
	RegisterDailyClosing   Register = "daily_closing"
)

// DateLayout is the wire format for all dates persisted in the registers.
const DateLayout = "2006-01-02"

// sheetNames maps a register to its sheet title in the spreadsheet.
var sheetNames = map[Register]string{
	RegisterVendor:         "Vendor Master",
	RegisterInward:         "Inward Register",
	RegisterOutward:        "Outward Register",
	RegisterReturns:        "Returns Register",
	RegisterDamage:         "Damage Loss Register",
	RegisterTransfer:       "Material Transfer Register",
	RegisterScrap:          "Scrap Register",
	RegisterIndent:         "Indent Register",
	RegisterBOQ:            "BOQ Mapping",
	RegisterStockLimits:    "Low Stock Limits",
	RegisterReconciliation: "Reconciliation Register",
	RegisterSnapshot:       "Stock Snapshot",
	RegisterMaterialMaster: "Material Master",
	RegisterGradeMaster:    "Grade Master",
	RegisterDailyClosing:   "Daily Closing",
}

// headers maps a register to its header row. Column order is the wire
// contract: codecs index into rows by these positions.
var headers = map[Register][]string{
	RegisterVendor: {
		"Vendor Name", "Material", "Material Name", "Grade", "Contact Person",
		"Phone", "Email", "GST Number", "Address", "Date Added",
	},
	RegisterInward: {
		"Date", "Material Name", "Material", "Grade", "Vendor", "Quantity",
		"Unit", "Rate", "Amount", "Invoice Number", "Received By",
		"Mfg Date", "Expiry Date", "Remarks",
	},
	RegisterOutward: {
		"Date", "Material Name", "Material", "Grade", "Quantity", "Unit",
		"Issued To", "Purpose", "Remarks",
	},
	RegisterReturns: {
		"Date", "Material Name", "Grade", "Returned By", "Quantity", "Unit",
		"Reason", "Remarks",
	},
	RegisterDamage: {
		"Date", "Material Name", "Grade", "Quantity", "Unit", "Reason",
		"Reported By", "Remarks",
	},
	RegisterTransfer: {
		"Transfer No", "Date", "From Location", "To Location",
		"Material Name", "Grade", "Quantity", "Unit", "Status", "Remarks",
	},
	RegisterScrap: {
		"Scrap No", "Date", "Scrap Item", "Material Source", "Quantity",
		"Unit", "Scrap Value", "Status", "Remarks",
	},
	RegisterIndent: {
		"Indent No", "Date", "Material Name", "Grade", "Quantity Indented",
		"Unit", "Purpose", "Requested By", "Status",
	},
	RegisterBOQ: {
		"BOQ Item", "Description", "Material Name", "Grade",
		"Quantity Allocated", "Unit", "Remarks",
	},
	RegisterStockLimits: {
		"Material Name", "Grade", "Unit", "Threshold", "Set By", "Date",
	},
	RegisterReconciliation: {
		"Date", "Material Name", "Grade", "Unit", "Theoretical Stock",
		"Actual Stock", "Variance", "Reconciled By", "Remarks",
	},
	RegisterSnapshot: {
		"Material Name", "Grade", "Unit", "Total Inward", "Total Outward",
		"Total Returns", "Total Loss", "Current Stock", "Avg Rate",
		"Stock Value", "Generated At",
	},
	RegisterMaterialMaster: {
		"Material Name", "Material Category", "Unit", "Description",
		"Common Usage", "Added By", "Date Added",
	},
	RegisterGradeMaster: {
		"Grade/Specification", "Material Category", "Description",
		"Common Usage", "Added By", "Date Added",
	},
	RegisterDailyClosing: {
		"Date", "Material Name", "Grade", "Opening Stock", "Received",
		"Issued", "Returns", "Losses", "Closing Stock",
	},
}

// SheetName returns the sheet title backing the register.
func (r Register) SheetName() string {
	return sheetNames[r]
}

// Header returns the register's header row.
func (r Register) Header() []string {
	return headers[r]
}

// IsValid reports whether the register is one of the known registers.
func (r Register) IsValid() bool {
	_, ok := sheetNames[r]
	return ok
}

// All returns every known register in a stable order.
func All() []Register {
	return []Register{
		RegisterVendor, RegisterInward, RegisterOutward, RegisterReturns,
		RegisterDamage, RegisterTransfer, RegisterScrap, RegisterIndent,
		RegisterBOQ, RegisterStockLimits, RegisterReconciliation,
		RegisterSnapshot, RegisterMaterialMaster, RegisterGradeMaster,
		RegisterDailyClosing,
	}
}
