package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/touristiq/crowd-backend-go/internal/cache"
	"github.com/touristiq/crowd-backend-go/internal/metrics"
	"github.com/touristiq/crowd-backend-go/internal/models"
	"github.com/touristiq/crowd-backend-go/internal/service"
	"github.com/touristiq/crowd-backend-go/pkg/response"
)

// KPIHandler handles HTTP requests for the dashboard KPI summary
type KPIHandler struct {
	kpiService *service.KPIService
	cache      *cache.Client
}

// NewKPIHandler creates a new KPI handler
func NewKPIHandler(kpiService *service.KPIService, cache *cache.Client) *KPIHandler {
	return &KPIHandler{
		kpiService: kpiService,
		cache:      cache,
	}
}

// GetKpis handles GET /api/v1/kpis?site_id=N
func (h *KPIHandler) GetKpis(c *gin.Context) {
	siteIDStr := c.Query("site_id")
	siteID, err := strconv.ParseInt(siteIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid site_id parameter")
		return
	}

	cacheKey := fmt.Sprintf("kpis:%d", siteID)
	var cached models.KpiSnapshot
	if hit, _ := h.cache.Get(c.Request.Context(), cacheKey, &cached); hit {
		metrics.CacheHits.Inc()
		response.Success(c, &cached)
		return
	}

	snapshot, err := h.kpiService.Kpis(siteID)
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			response.NotFound(c, "No crowd data available for this site")
			return
		}
		response.InternalError(c, "Failed to compute KPIs", err)
		return
	}

	_ = h.cache.Set(c.Request.Context(), cacheKey, snapshot)
	response.Success(c, snapshot)
}
