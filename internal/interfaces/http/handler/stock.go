package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sitestock/backend/internal/application/registry"
	"github.com/sitestock/backend/internal/application/stock"
	"github.com/sitestock/backend/internal/domain/ledger"
	"github.com/sitestock/backend/internal/domain/register"
)

// StockHandler serves the derived stock views: summary, alerts, expiry,
// limits, reconciliation, snapshot and daily closing
type StockHandler struct {
	BaseHandler
	stock          *stock.StockService
	limits         *registry.LimitService
	reconciliation *stock.ReconciliationService
	closing        *stock.ClosingService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(
	stockService *stock.StockService,
	limits *registry.LimitService,
	reconciliation *stock.ReconciliationService,
	closing *stock.ClosingService,
) *StockHandler {
	return &StockHandler{
		stock:          stockService,
		limits:         limits,
		reconciliation: reconciliation,
		closing:        closing,
	}
}

// Summary returns the full stock summary
// GET /api/v1/stock/summary
func (h *StockHandler) Summary(c *gin.Context) {
	items, err := h.stock.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, len(items))
}

// Alerts returns the low and out-of-stock lines
// GET /api/v1/stock/alerts
func (h *StockHandler) Alerts(c *gin.Context) {
	items, err := h.stock.Alerts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, len(items))
}

// Expiry returns batches expired or expiring within 30 days
// GET /api/v1/stock/expiry
func (h *StockHandler) Expiry(c *gin.Context) {
	alerts, err := h.stock.Expiry(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, alerts, len(alerts))
}

// ListLimits returns the configured low-stock thresholds
// GET /api/v1/stock/limits
func (h *StockHandler) ListLimits(c *gin.Context) {
	limits, err := h.limits.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, limits, len(limits))
}

// PutLimitRequest is the payload for setting a low-stock threshold
type PutLimitRequest struct {
	MaterialName string  `json:"material_name" binding:"required"`
	Grade        string  `json:"grade"`
	Unit         string  `json:"unit"`
	Threshold    float64 `json:"threshold" binding:"gte=0"`
	SetBy        string  `json:"set_by"`
}

// PutLimit upserts the threshold for one material
// PUT /api/v1/stock/limits
func (h *StockHandler) PutLimit(c *gin.Context) {
	var req PutLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.limits.Put(c.Request.Context(), register.StockLimitRecord{
		MaterialName: req.MaterialName,
		Grade:        req.Grade,
		Unit:         req.Unit,
		Threshold:    toDecimal(req.Threshold),
		SetBy:        req.SetBy,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rec)
}

// PhysicalCountRequest is one counted line of a reconciliation
type PhysicalCountRequest struct {
	MaterialName string  `json:"material_name" binding:"required"`
	Grade        string  `json:"grade"`
	Actual       float64 `json:"actual" binding:"gte=0"`
}

// SubmitReconciliationRequest is the payload for a physical count
type SubmitReconciliationRequest struct {
	ReconciledBy string                 `json:"reconciled_by" binding:"required"`
	Remarks      string                 `json:"remarks"`
	Counts       []PhysicalCountRequest `json:"counts" binding:"required,min=1,dive"`
}

// SubmitReconciliation records a physical count against the ledger
// POST /api/v1/stock/reconciliation
func (h *StockHandler) SubmitReconciliation(c *gin.Context) {
	var req SubmitReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	counts := make([]ledger.PhysicalCount, 0, len(req.Counts))
	for _, pc := range req.Counts {
		counts = append(counts, ledger.PhysicalCount{
			Key:    register.NewMaterialKey(pc.MaterialName, pc.Grade),
			Actual: toDecimal(pc.Actual),
		})
	}

	records, err := h.reconciliation.Submit(c.Request.Context(), req.ReconciledBy, req.Remarks, counts)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, records)
}

// ListReconciliation returns all reconciliation entries
// GET /api/v1/stock/reconciliation
func (h *StockHandler) ListReconciliation(c *gin.Context) {
	records, err := h.reconciliation.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, records, len(records))
}

// RefreshSnapshot recomputes and rewrites the stock snapshot sheet
// POST /api/v1/stock/snapshot
func (h *StockHandler) RefreshSnapshot(c *gin.Context) {
	records, err := h.reconciliation.RefreshSnapshot(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, records, len(records))
}

// SaveClosingRequest is the payload for persisting a daily closing
type SaveClosingRequest struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// SaveClosing generates and persists the closing for the date, replacing
// any rows previously saved for the same date
// POST /api/v1/stock/closing
func (h *StockHandler) SaveClosing(c *gin.Context) {
	var req SaveClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	date := time.Now()
	if req.Date != "" {
		date = parseDateField(req.Date)
	}

	records, err := h.closing.Save(c.Request.Context(), date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, records)
}

// ListClosing returns saved closing lines, optionally for one date
// GET /api/v1/stock/closing?date=YYYY-MM-DD
func (h *StockHandler) ListClosing(c *gin.Context) {
	records, err := h.closing.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, records, len(records))
}
