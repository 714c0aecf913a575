package register

// The batch decoders below drop rows that fail to parse. A register is
// hand-edited spreadsheet data in the end; one bad row must never take a
// whole view down.

// ParseVendorRows decodes Vendor Master rows, skipping malformed ones.
func ParseVendorRows(rows [][]string) []VendorRecord {
	out := make([]VendorRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseVendorRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseInwardRows decodes Inward Register rows, skipping malformed ones.
func ParseInwardRows(rows [][]string) []InwardRecord {
	out := make([]InwardRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseInwardRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseOutwardRows decodes Outward Register rows, skipping malformed ones.
func ParseOutwardRows(rows [][]string) []OutwardRecord {
	out := make([]OutwardRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseOutwardRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseReturnRows decodes Returns Register rows, skipping malformed ones.
func ParseReturnRows(rows [][]string) []ReturnRecord {
	out := make([]ReturnRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseReturnRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseDamageRows decodes Damage Loss Register rows, skipping malformed ones.
func ParseDamageRows(rows [][]string) []DamageRecord {
	out := make([]DamageRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseDamageRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseTransferRows decodes Material Transfer Register rows, skipping malformed ones.
func ParseTransferRows(rows [][]string) []TransferRecord {
	out := make([]TransferRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseTransferRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseScrapRows decodes Scrap Register rows, skipping malformed ones.
func ParseScrapRows(rows [][]string) []ScrapRecord {
	out := make([]ScrapRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseScrapRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseIndentRows decodes Indent Register rows, skipping malformed ones.
func ParseIndentRows(rows [][]string) []IndentRecord {
	out := make([]IndentRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseIndentRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseBOQRows decodes BOQ Mapping rows, skipping malformed ones.
func ParseBOQRows(rows [][]string) []BOQRecord {
	out := make([]BOQRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseBOQRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseStockLimitRows decodes Low Stock Limits rows, skipping malformed ones.
func ParseStockLimitRows(rows [][]string) []StockLimitRecord {
	out := make([]StockLimitRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseStockLimitRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseReconciliationRows decodes Reconciliation Register rows, skipping malformed ones.
func ParseReconciliationRows(rows [][]string) []ReconciliationRecord {
	out := make([]ReconciliationRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseReconciliationRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseMaterialMasterRows decodes Material Master rows, skipping malformed ones.
func ParseMaterialMasterRows(rows [][]string) []MaterialMasterRecord {
	out := make([]MaterialMasterRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseMaterialMasterRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseGradeMasterRows decodes Grade Master rows, skipping malformed ones.
func ParseGradeMasterRows(rows [][]string) []GradeMasterRecord {
	out := make([]GradeMasterRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseGradeMasterRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// ParseClosingRows decodes Daily Closing rows, skipping malformed ones.
func ParseClosingRows(rows [][]string) []ClosingRecord {
	out := make([]ClosingRecord, 0, len(rows))
	for _, row := range rows {
		if r, err := ParseClosingRow(row); err == nil {
			out = append(out, r)
		}
	}
	return out
}
