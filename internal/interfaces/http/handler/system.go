package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sitestock/backend/internal/infrastructure/cache"
	"github.com/sitestock/backend/internal/interfaces/http/dto"
)

// SystemHandler handles system-level endpoints
type SystemHandler struct {
	BaseHandler
	startTime time.Time
	cache     *cache.RegisterCache
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(registerCache *cache.RegisterCache) *SystemHandler {
	return &SystemHandler{
		startTime: time.Now(),
		cache:     registerCache,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	CacheHits int64  `json:"cache_hits"`
	CacheMiss int64  `json:"cache_misses"`
}

// Health reports service liveness and register cache counters
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	var hits, misses int64
	if h.cache != nil {
		hits, misses = h.cache.Stats()
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(HealthResponse{
		Status:    "ok",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		CacheHits: hits,
		CacheMiss: misses,
	}))
}

// ClearCache drops every cached register
// POST /api/v1/system/cache/clear
func (h *SystemHandler) ClearCache(c *gin.Context) {
	if h.cache != nil {
		h.cache.InvalidateAll()
	}
	h.Success(c, gin.H{"cleared": true})
}
