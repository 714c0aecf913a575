package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sitestock/backend/internal/application/registry"
	"github.com/sitestock/backend/internal/domain/register"
)

// BOQHandler serves the bill-of-quantities mapping endpoints
type BOQHandler struct {
	BaseHandler
	service *registry.BOQService
}

// NewBOQHandler creates a new BOQHandler
func NewBOQHandler(service *registry.BOQService) *BOQHandler {
	return &BOQHandler{service: service}
}

// CreateBOQRequest is the payload for adding a BOQ mapping
type CreateBOQRequest struct {
	BOQItem           string  `json:"boq_item" binding:"required"`
	Description       string  `json:"description"`
	MaterialName      string  `json:"material_name" binding:"required"`
	Grade             string  `json:"grade"`
	QuantityAllocated float64 `json:"quantity_allocated" binding:"required,gt=0"`
	Unit              string  `json:"unit"`
	Remarks           string  `json:"remarks"`
}

// List returns all BOQ mappings
// GET /api/v1/boq
func (h *BOQHandler) List(c *gin.Context) {
	mappings, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, mappings, len(mappings))
}

// Create adds a BOQ mapping
// POST /api/v1/boq
func (h *BOQHandler) Create(c *gin.Context) {
	var req CreateBOQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.Add(c.Request.Context(), register.BOQRecord{
		BOQItem:           req.BOQItem,
		Description:       req.Description,
		MaterialName:      req.MaterialName,
		Grade:             req.Grade,
		QuantityAllocated: toDecimal(req.QuantityAllocated),
		Unit:              req.Unit,
		Remarks:           req.Remarks,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}
