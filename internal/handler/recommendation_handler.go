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

// RecommendationHandler handles HTTP requests for visit recommendations
type RecommendationHandler struct {
	recService *service.RecommendationService
	cache      *cache.Client
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recService *service.RecommendationService, cache *cache.Client) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		cache:      cache,
	}
}

// GetRecommendation handles GET /api/v1/recommend?site_id=N
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	siteIDStr := c.Query("site_id")
	siteID, err := strconv.ParseInt(siteIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid site_id parameter")
		return
	}

	cacheKey := fmt.Sprintf("recommend:%d", siteID)
	var cached models.RecommendationResponse
	if hit, _ := h.cache.Get(c.Request.Context(), cacheKey, &cached); hit {
		metrics.CacheHits.Inc()
		response.Success(c, &cached)
		return
	}

	rec, err := h.recService.Recommend(c.Request.Context(), siteID)
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			response.NotFound(c, "No crowd data available for this site")
			return
		}
		response.InternalError(c, "Failed to build recommendation", err)
		return
	}

	_ = h.cache.Set(c.Request.Context(), cacheKey, rec)
	response.Success(c, rec)
}
