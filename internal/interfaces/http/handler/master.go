package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sitestock/backend/internal/application/registry"
	"github.com/sitestock/backend/internal/domain/register"
)

// MasterHandler serves the material and grade master catalogs
type MasterHandler struct {
	BaseHandler
	service *registry.MasterService
}

// NewMasterHandler creates a new MasterHandler
func NewMasterHandler(service *registry.MasterService) *MasterHandler {
	return &MasterHandler{service: service}
}

// CreateMaterialRequest is the payload for adding a material to the catalog
type CreateMaterialRequest struct {
	MaterialName     string `json:"material_name" binding:"required"`
	MaterialCategory string `json:"material_category"`
	Unit             string `json:"unit"`
	Description      string `json:"description"`
	CommonUsage      string `json:"common_usage"`
	AddedBy          string `json:"added_by"`
}

// ListMaterials returns the material master catalog
// GET /api/v1/masters/materials
func (h *MasterHandler) ListMaterials(c *gin.Context) {
	materials, err := h.service.ListMaterials(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, materials, len(materials))
}

// CreateMaterial adds a material to the catalog
// POST /api/v1/masters/materials
func (h *MasterHandler) CreateMaterial(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.AddMaterial(c.Request.Context(), register.MaterialMasterRecord{
		MaterialName:     req.MaterialName,
		MaterialCategory: req.MaterialCategory,
		Unit:             req.Unit,
		Description:      req.Description,
		CommonUsage:      req.CommonUsage,
		AddedBy:          req.AddedBy,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}

// CreateGradeRequest is the payload for adding a grade to the catalog
type CreateGradeRequest struct {
	Grade            string `json:"grade" binding:"required"`
	MaterialCategory string `json:"material_category"`
	Description      string `json:"description"`
	CommonUsage      string `json:"common_usage"`
	AddedBy          string `json:"added_by"`
}

// ListGrades returns the grade master catalog
// GET /api/v1/masters/grades
func (h *MasterHandler) ListGrades(c *gin.Context) {
	grades, err := h.service.ListGrades(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, grades, len(grades))
}

// CreateGrade adds a grade to the catalog
// POST /api/v1/masters/grades
func (h *MasterHandler) CreateGrade(c *gin.Context) {
	var req CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.AddGrade(c.Request.Context(), register.GradeMasterRecord{
		Grade:            req.Grade,
		MaterialCategory: req.MaterialCategory,
		Description:      req.Description,
		CommonUsage:      req.CommonUsage,
		AddedBy:          req.AddedBy,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rec)
}

// Seed loads the default catalogs into uninitialized masters
// POST /api/v1/masters/seed
func (h *MasterHandler) Seed(c *gin.Context) {
	materialsSeeded, gradesSeeded, err := h.service.Seed(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"materials_seeded": materialsSeeded,
		"grades_seeded":    gradesSeeded,
	})
}
