package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sitestock/backend/internal/application/registry"
	"github.com/sitestock/backend/internal/domain/register"
)

// VendorHandler serves the vendor directory endpoints
type VendorHandler struct {
	BaseHandler
	service *registry.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(service *registry.VendorService) *VendorHandler {
	return &VendorHandler{service: service}
}

// CreateVendorRequest is the payload for adding a vendor
type CreateVendorRequest struct {
	VendorName    string `json:"vendor_name" binding:"required"`
	Material      string `json:"material"`
	MaterialName  string `json:"material_name"`
	Grade         string `json:"grade"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Phone         string `json:"phone" binding:"required,phone10"`
	Email         string `json:"email" binding:"omitempty,email"`
	GSTNumber     string `json:"gst_number"`
	Address       string `json:"address"`
}

// List returns all vendors
// GET /api/v1/vendors
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, vendors, len(vendors))
}

// Create adds a vendor
// POST /api/v1/vendors
func (h *VendorHandler) Create(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.Add(c.Request.Context(), register.VendorRecord{
		VendorName:    req.VendorName,
		Material:      req.Material,
		MaterialName:  req.MaterialName,
		Grade:         req.Grade,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		GSTNumber:     req.GSTNumber,
		Address:       req.Address,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}

// Delete removes a vendor by name
// DELETE /api/v1/vendors/:name
func (h *VendorHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("name")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
