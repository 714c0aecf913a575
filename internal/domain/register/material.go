package register

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// DefaultUnit is the unit reported for a material that has no inward
// entries and therefore no authoritative unit.
const DefaultUnit = "Units"

// MaterialKey identifies a material line in the stock ledger.
// Grade may be empty for ungraded materials.
type MaterialKey struct {
	MaterialName string `json:"material_name"`
	Grade        string `json:"grade"`
}

// NewMaterialKey builds a key with whitespace-trimmed components.
func NewMaterialKey(materialName, grade string) MaterialKey {
	return MaterialKey{
		MaterialName: strings.TrimSpace(materialName),
		Grade:        strings.TrimSpace(grade),
	}
}

// String renders the key for logging and map display.
func (k MaterialKey) String() string {
	if k.Grade == "" {
		return k.MaterialName
	}
	return k.MaterialName + " / " + k.Grade
}

// Business number prefixes for workflow registers.
const (
	IndentNumberPrefix   = "IND"
	TransferNumberPrefix = "TRF"
	ScrapNumberPrefix    = "SCR"
)

var documentSeq atomic.Uint32

// NewBusinessNumber generates a register-scoped document number from the
// wall clock plus a rolling three-digit sequence, e.g. IND20260823151204007.
// The sequence keeps numbers distinct when several documents are created
// within the same second.
func NewBusinessNumber(prefix string, now time.Time) string {
	seq := documentSeq.Add(1) % 1000
	return fmt.Sprintf("%s%s%03d", prefix, now.Format("20060102150405"), seq)
}

// Indent statuses.
const (
	IndentStatusPending  = "Pending"
	IndentStatusApproved = "Approved"
	IndentStatusIssued   = "Issued"
	IndentStatusRejected = "Rejected"
)

// Transfer statuses.
const (
	TransferStatusPending   = "Pending"
	TransferStatusInTransit = "In Transit"
	TransferStatusCompleted = "Completed"
)

// Scrap statuses.
const (
	ScrapStatusStored = "Stored"
	ScrapStatusSold   = "Sold"
)

// ValidIndentStatus reports whether s is an allowed indent status.
func ValidIndentStatus(s string) bool {
	switch s {
	case IndentStatusPending, IndentStatusApproved, IndentStatusIssued, IndentStatusRejected:
		return true
	}
	return false
}

// ValidTransferStatus reports whether s is an allowed transfer status.
func ValidTransferStatus(s string) bool {
	switch s {
	case TransferStatusPending, TransferStatusInTransit, TransferStatusCompleted:
		return true
	}
	return false
}

// ValidScrapStatus reports whether s is an allowed scrap status.
func ValidScrapStatus(s string) bool {
	switch s {
	case ScrapStatusStored, ScrapStatusSold:
		return true
	}
	return false
}

// DefaultMaterials returns the seed rows for the Material Master register.
func DefaultMaterials(addedOn time.Time) []MaterialMasterRecord {
	date := addedOn
	rows := []MaterialMasterRecord{
		{"Steel", "Metal", "Kg/MT", "Construction steel bars and rods", "Structural construction, reinforcement", "System", date},
		{"Cement", "Binder", "Bag", "Portland cement for construction", "Concrete mixing, masonry", "System", date},
		{"Sand", "Aggregate", "CFT", "Fine aggregate for construction", "Concrete mixing, plastering", "System", date},
		{"Gravel", "Aggregate", "CFT", "Coarse aggregate for construction", "Concrete mixing, foundation", "System", date},
		{"Bricks", "Masonry", "Nos", "Clay bricks for construction", "Wall construction, partition", "System", date},
		{"Tiles", "Finishing", "Sqft", "Ceramic or stone tiles", "Flooring, wall cladding", "System", date},
		{"Paint", "Finishing", "Litre", "Wall and surface paint", "Interior and exterior finishing", "System", date},
		{"Wire", "Electrical", "Meter", "Electrical wiring cables", "Electrical installations", "System", date},
		{"Pipe", "Plumbing", "Meter", "Water and drainage pipes", "Plumbing, drainage systems", "System", date},
		{"Wood", "Timber", "CFT", "Construction timber and wood", "Formwork, carpentry", "System", date},
		{"Glass", "Glazing", "Sqft", "Window and door glass", "Windows, doors, partitions", "System", date},
		{"Aluminum", "Metal", "Kg", "Aluminum sections and sheets", "Windows, doors, cladding", "System", date},
		{"Concrete", "Premix", "Cum", "Ready mix concrete", "Structural construction", "System", date},
		{"Marble", "Stone", "Sqft", "Natural marble for finishing", "Flooring, wall cladding", "System", date},
	}
	return rows
}

// DefaultGrades returns the seed rows for the Grade Master register.
func DefaultGrades(addedOn time.Time) []GradeMasterRecord {
	date := addedOn
	rows := []GradeMasterRecord{
		{"8mm", "Steel", "Steel reinforcement bar 8mm diameter", "Light reinforcement work", "System", date},
		{"10mm", "Steel", "Steel reinforcement bar 10mm diameter", "Medium reinforcement work", "System", date},
		{"12mm", "Steel", "Steel reinforcement bar 12mm diameter", "Standard reinforcement work", "System", date},
		{"16mm", "Steel", "Steel reinforcement bar 16mm diameter", "Heavy reinforcement work", "System", date},
		{"20mm", "Steel", "Steel reinforcement bar 20mm diameter", "Heavy structural work", "System", date},
		{"OPC 43", "Cement", "Ordinary Portland Cement Grade 43", "General construction work", "System", date},
		{"OPC 53", "Cement", "Ordinary Portland Cement Grade 53", "High strength construction", "System", date},
		{"PPC", "Cement", "Portland Pozzolana Cement", "Durable construction work", "System", date},
		{"M Sand", "Sand", "Manufactured sand", "Concrete and plastering work", "System", date},
		{"River Sand", "Sand", "Natural river sand", "Fine concrete work", "System", date},
		{"20mm", "Aggregate", "20mm aggregate stones", "Concrete work", "System", date},
		{"12mm", "Aggregate", "12mm aggregate stones", "Concrete and road work", "System", date},
		{"6mm", "Aggregate", "6mm aggregate stones", "Fine concrete work", "System", date},
		{"Red Brick", "Bricks", "Standard red clay bricks", "Wall construction", "System", date},
		{"Fly Ash Brick", "Bricks", "Eco-friendly fly ash bricks", "Modern construction", "System", date},
		{"2x2 feet", "Tiles", "Standard 2x2 feet tiles", "Flooring work", "System", date},
		{"1x1 feet", "Tiles", "Small 1x1 feet tiles", "Detailed flooring work", "System", date},
	}
	return rows
}
