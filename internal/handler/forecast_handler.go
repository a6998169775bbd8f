package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/touristiq/crowd-backend-go/internal/service"
	"github.com/touristiq/crowd-backend-go/pkg/response"
)

// ForecastHandler handles HTTP requests for staffing and visitor forecasts
type ForecastHandler struct {
	forecastService *service.ForecastService
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecastService *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
	}
}

// GetHourlyForecast handles GET /api/v1/hourly-forecast?site_id=N
func (h *ForecastHandler) GetHourlyForecast(c *gin.Context) {
	siteIDStr := c.Query("site_id")
	siteID, err := strconv.ParseInt(siteIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid site_id parameter")
		return
	}

	response.Success(c, h.forecastService.HourlyForecast(siteID))
}

// GetVisitorPrediction handles GET /api/v1/visitor-prediction?site_id=N&period=weekly|monthly
func (h *ForecastHandler) GetVisitorPrediction(c *gin.Context) {
	siteIDStr := c.Query("site_id")
	siteID, err := strconv.ParseInt(siteIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid site_id parameter")
		return
	}

	period := c.DefaultQuery("period", "weekly")

	series, err := h.forecastService.VisitorPrediction(siteID, period)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			response.BadRequest(c, "Invalid period parameter, expected weekly or monthly")
			return
		}
		response.InternalError(c, "Failed to generate prediction", err)
		return
	}

	response.Success(c, series)
}
