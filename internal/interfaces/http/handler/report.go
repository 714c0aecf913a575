package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sitestock/backend/internal/application/stock"
	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/interfaces/http/dto"
)

// ReportHandler serves the analysis reports and the dashboard
type ReportHandler struct {
	BaseHandler
	reports   *stock.ReportService
	dashboard *stock.DashboardService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports *stock.ReportService, dashboard *stock.DashboardService) *ReportHandler {
	return &ReportHandler{reports: reports, dashboard: dashboard}
}

// dateRange reads the from/to query parameters. Missing values default to
// the last 30 days ending today.
func (h *ReportHandler) dateRange(c *gin.Context) (from, to time.Time, ok bool) {
	to = time.Now()
	from = to.AddDate(0, 0, -30)

	if s := c.Query("from"); s != "" {
		t, err := time.Parse(register.DateLayout, s)
		if err != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeValidationFormat, "from: Invalid date format, expected YYYY-MM-DD")
			return from, to, false
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(register.DateLayout, s)
		if err != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeValidationFormat, "to: Invalid date format, expected YYYY-MM-DD")
			return from, to, false
		}
		to = t
	}
	return from, to, true
}

// Daily returns the per-date inward/outward summary
// GET /api/v1/reports/daily?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) Daily(c *gin.Context) {
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}
	rows, err := h.reports.Daily(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, rows, len(rows))
}

// Monthly returns the per-month rollup
// GET /api/v1/reports/monthly?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) Monthly(c *gin.Context) {
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}
	rows, err := h.reports.Monthly(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, rows, len(rows))
}

// Vendors returns the per-vendor purchase analysis
// GET /api/v1/reports/vendors
func (h *ReportHandler) Vendors(c *gin.Context) {
	rows, err := h.reports.Vendors(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, rows, len(rows))
}

// Materials returns the per-material purchase analysis
// GET /api/v1/reports/materials
func (h *ReportHandler) Materials(c *gin.Context) {
	rows, err := h.reports.Materials(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, rows, len(rows))
}

// Dashboard returns the landing-page metrics
// GET /api/v1/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	metrics, err := h.dashboard.Metrics(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, metrics)
}
