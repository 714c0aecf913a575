package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sitestock/backend/internal/application/registry"
	"github.com/sitestock/backend/internal/domain/register"
)

// MovementHandler serves the four stock movement registers
type MovementHandler struct {
	BaseHandler
	service *registry.MovementService
}

// NewMovementHandler creates a new MovementHandler
func NewMovementHandler(service *registry.MovementService) *MovementHandler {
	return &MovementHandler{service: service}
}

// movementFilter reads the common list query parameters
func movementFilter(c *gin.Context) registry.MovementFilter {
	return registry.MovementFilter{
		Date:     c.Query("date"),
		Material: c.Query("material"),
		Grade:    c.Query("grade"),
		Vendor:   c.Query("vendor"),
	}
}

// parseDateField parses an optional YYYY-MM-DD request field.
func parseDateField(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(register.DateLayout, s)
	return t
}

// CreateInwardRequest is the payload for recording a material receipt
type CreateInwardRequest struct {
	Date          string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	MaterialName  string  `json:"material_name" binding:"required"`
	Material      string  `json:"material"`
	Grade         string  `json:"grade"`
	Vendor        string  `json:"vendor"`
	Quantity      float64 `json:"quantity" binding:"required,gt=0"`
	Unit          string  `json:"unit"`
	Rate          float64 `json:"rate" binding:"gte=0"`
	InvoiceNumber string  `json:"invoice_number"`
	ReceivedBy    string  `json:"received_by"`
	MfgDate       string  `json:"mfg_date" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate    string  `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	Remarks       string  `json:"remarks"`
}

// ListInward returns inward entries
// GET /api/v1/inward
func (h *MovementHandler) ListInward(c *gin.Context) {
	entries, err := h.service.ListInward(c.Request.Context(), movementFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, entries, len(entries))
}

// CreateInward records a material receipt
// POST /api/v1/inward
func (h *MovementHandler) CreateInward(c *gin.Context) {
	var req CreateInwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.AddInward(c.Request.Context(), register.InwardRecord{
		Date:          parseDateField(req.Date),
		MaterialName:  req.MaterialName,
		Material:      req.Material,
		Grade:         req.Grade,
		Vendor:        req.Vendor,
		Quantity:      toDecimal(req.Quantity),
		Unit:          req.Unit,
		Rate:          toDecimal(req.Rate),
		InvoiceNumber: req.InvoiceNumber,
		ReceivedBy:    req.ReceivedBy,
		MfgDate:       parseDateField(req.MfgDate),
		ExpiryDate:    parseDateField(req.ExpiryDate),
		Remarks:       req.Remarks,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}

// CreateOutwardRequest is the payload for recording a material issue
type CreateOutwardRequest struct {
	Date         string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	MaterialName string  `json:"material_name" binding:"required"`
	Material     string  `json:"material"`
	Grade        string  `json:"grade"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit"`
	IssuedTo     string  `json:"issued_to"`
	Purpose      string  `json:"purpose"`
	Remarks      string  `json:"remarks"`
}

// ListOutward returns outward entries
// GET /api/v1/outward
func (h *MovementHandler) ListOutward(c *gin.Context) {
	entries, err := h.service.ListOutward(c.Request.Context(), movementFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, entries, len(entries))
}

// CreateOutward records a material issue
// POST /api/v1/outward
func (h *MovementHandler) CreateOutward(c *gin.Context) {
	var req CreateOutwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.AddOutward(c.Request.Context(), register.OutwardRecord{
		Date:         parseDateField(req.Date),
		MaterialName: req.MaterialName,
		Material:     req.Material,
		Grade:        req.Grade,
		Quantity:     toDecimal(req.Quantity),
		Unit:         req.Unit,
		IssuedTo:     req.IssuedTo,
		Purpose:      req.Purpose,
		Remarks:      req.Remarks,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}

// CreateReturnRequest is the payload for recording a site return
type CreateReturnRequest struct {
	Date         string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	MaterialName string  `json:"material_name" binding:"required"`
	Grade        string  `json:"grade"`
	ReturnedBy   string  `json:"returned_by"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit"`
	Reason       string  `json:"reason"`
	Remarks      string  `json:"remarks"`
}

// ListReturns returns return entries
// GET /api/v1/returns
func (h *MovementHandler) ListReturns(c *gin.Context) {
	entries, err := h.service.ListReturns(c.Request.Context(), movementFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, entries, len(entries))
}

// CreateReturn records a site return
// POST /api/v1/returns
func (h *MovementHandler) CreateReturn(c *gin.Context) {
	var req CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.AddReturn(c.Request.Context(), register.ReturnRecord{
		Date:         parseDateField(req.Date),
		MaterialName: req.MaterialName,
		Grade:        req.Grade,
		ReturnedBy:   req.ReturnedBy,
		Quantity:     toDecimal(req.Quantity),
		Unit:         req.Unit,
		Reason:       req.Reason,
		Remarks:      req.Remarks,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}

// CreateDamageRequest is the payload for recording damage or loss
type CreateDamageRequest struct {
	Date         string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	MaterialName string  `json:"material_name" binding:"required"`
	Grade        string  `json:"grade"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit"`
	Reason       string  `json:"reason"`
	ReportedBy   string  `json:"reported_by"`
	Remarks      string  `json:"remarks"`
}

// ListDamage returns damage/loss entries
// GET /api/v1/damage
func (h *MovementHandler) ListDamage(c *gin.Context) {
	entries, err := h.service.ListDamage(c.Request.Context(), movementFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, entries, len(entries))
}

// CreateDamage records damage or loss
// POST /api/v1/damage
func (h *MovementHandler) CreateDamage(c *gin.Context) {
	var req CreateDamageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.AddDamage(c.Request.Context(), register.DamageRecord{
		Date:         parseDateField(req.Date),
		MaterialName: req.MaterialName,
		Grade:        req.Grade,
		Quantity:     toDecimal(req.Quantity),
		Unit:         req.Unit,
		Reason:       req.Reason,
		ReportedBy:   req.ReportedBy,
		Remarks:      req.Remarks,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}
