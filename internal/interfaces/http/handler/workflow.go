package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sitestock/backend/internal/application/registry"
	"github.com/sitestock/backend/internal/domain/register"
)

// WorkflowHandler serves the numbered document registers: indents,
// transfers and scrap
type WorkflowHandler struct {
	BaseHandler
	service *registry.WorkflowService
}

// NewWorkflowHandler creates a new WorkflowHandler
func NewWorkflowHandler(service *registry.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{service: service}
}

// UpdateStatusRequest is the payload for status transitions
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateIndentRequest is the payload for raising an indent
type CreateIndentRequest struct {
	Date             string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	MaterialName     string  `json:"material_name" binding:"required"`
	Grade            string  `json:"grade"`
	QuantityIndented float64 `json:"quantity_indented" binding:"required,gt=0"`
	Unit             string  `json:"unit"`
	Purpose          string  `json:"purpose"`
	RequestedBy      string  `json:"requested_by"`
}

// ListIndents returns indents, optionally filtered by ?status=
// GET /api/v1/indents
func (h *WorkflowHandler) ListIndents(c *gin.Context) {
	indents, err := h.service.ListIndents(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, indents, len(indents))
}

// CreateIndent raises an indent
// POST /api/v1/indents
func (h *WorkflowHandler) CreateIndent(c *gin.Context) {
	var req CreateIndentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.CreateIndent(c.Request.Context(), register.IndentRecord{
		Date:             parseDateField(req.Date),
		MaterialName:     req.MaterialName,
		Grade:            req.Grade,
		QuantityIndented: toDecimal(req.QuantityIndented),
		Unit:             req.Unit,
		Purpose:          req.Purpose,
		RequestedBy:      req.RequestedBy,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}

// UpdateIndentStatus transitions an indent
// PATCH /api/v1/indents/:number/status
func (h *WorkflowHandler) UpdateIndentStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateIndentStatus(c.Request.Context(), c.Param("number"), req.Status); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"indent_no": c.Param("number"), "status": req.Status})
}

// CreateTransferRequest is the payload for a material transfer
type CreateTransferRequest struct {
	Date         string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	FromLocation string  `json:"from_location" binding:"required"`
	ToLocation   string  `json:"to_location" binding:"required"`
	MaterialName string  `json:"material_name" binding:"required"`
	Grade        string  `json:"grade"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit"`
	Remarks      string  `json:"remarks"`
}

// ListTransfers returns transfers, optionally filtered by ?status=
// GET /api/v1/transfers
func (h *WorkflowHandler) ListTransfers(c *gin.Context) {
	transfers, err := h.service.ListTransfers(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, transfers, len(transfers))
}

// CreateTransfer records a material transfer out of the site
// POST /api/v1/transfers
func (h *WorkflowHandler) CreateTransfer(c *gin.Context) {
	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.CreateTransfer(c.Request.Context(), register.TransferRecord{
		Date:         parseDateField(req.Date),
		FromLocation: req.FromLocation,
		ToLocation:   req.ToLocation,
		MaterialName: req.MaterialName,
		Grade:        req.Grade,
		Quantity:     toDecimal(req.Quantity),
		Unit:         req.Unit,
		Remarks:      req.Remarks,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}

// UpdateTransferStatus transitions a transfer
// PATCH /api/v1/transfers/:number/status
func (h *WorkflowHandler) UpdateTransferStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateTransferStatus(c.Request.Context(), c.Param("number"), req.Status); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"transfer_no": c.Param("number"), "status": req.Status})
}

// CreateScrapRequest is the payload for a scrap entry
type CreateScrapRequest struct {
	Date           string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	ScrapItem      string  `json:"scrap_item" binding:"required"`
	MaterialSource string  `json:"material_source"`
	Quantity       float64 `json:"quantity" binding:"required,gt=0"`
	Unit           string  `json:"unit"`
	ScrapValue     float64 `json:"scrap_value" binding:"gte=0"`
	Remarks        string  `json:"remarks"`
}

// ListScrap returns scrap entries, optionally filtered by ?status=
// GET /api/v1/scrap
func (h *WorkflowHandler) ListScrap(c *gin.Context) {
	entries, err := h.service.ListScrap(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, entries, len(entries))
}

// CreateScrap records a scrap entry
// POST /api/v1/scrap
func (h *WorkflowHandler) CreateScrap(c *gin.Context) {
	var req CreateScrapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.CreateScrap(c.Request.Context(), register.ScrapRecord{
		Date:           parseDateField(req.Date),
		ScrapItem:      req.ScrapItem,
		MaterialSource: req.MaterialSource,
		Quantity:       toDecimal(req.Quantity),
		Unit:           req.Unit,
		ScrapValue:     toDecimal(req.ScrapValue),
		Remarks:        req.Remarks,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}

// UpdateScrapStatus transitions a scrap entry
// PATCH /api/v1/scrap/:number/status
func (h *WorkflowHandler) UpdateScrapStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateScrapStatus(c.Request.Context(), c.Param("number"), req.Status); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"scrap_no": c.Param("number"), "status": req.Status})
}
