package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/touristiq/crowd-backend-go/internal/config"
	"github.com/touristiq/crowd-backend-go/internal/handler"
	"github.com/touristiq/crowd-backend-go/internal/middleware"
)

// Handlers bundles the endpoint handlers wired by SetupRouter.
type Handlers struct {
	KPI            *handler.KPIHandler
	Forecast       *handler.ForecastHandler
	Recommendation *handler.RecommendationHandler
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSec)*time.Second))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Crowd Backend API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/kpis", h.KPI.GetKpis)
		api.GET("/hourly-forecast", h.Forecast.GetHourlyForecast)
		api.GET("/visitor-prediction", h.Forecast.GetVisitorPrediction)
		api.GET("/recommend", h.Recommendation.GetRecommendation)
	}

	return r
}
