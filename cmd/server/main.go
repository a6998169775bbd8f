package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/touristiq/crowd-backend-go/internal/api"
	"github.com/touristiq/crowd-backend-go/internal/cache"
	"github.com/touristiq/crowd-backend-go/internal/config"
	"github.com/touristiq/crowd-backend-go/internal/database"
	"github.com/touristiq/crowd-backend-go/internal/handler"
	"github.com/touristiq/crowd-backend-go/internal/ingest"
	"github.com/touristiq/crowd-backend-go/internal/predictor"
	"github.com/touristiq/crowd-backend-go/internal/repository"
	"github.com/touristiq/crowd-backend-go/internal/service"
	"github.com/touristiq/crowd-backend-go/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := database.Init(database.Config{Path: cfg.Database.Path}); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer database.Close()
	db := database.GetDB()

	loader := ingest.NewLoader(db)
	if err := loader.LoadAll(cfg.Data.SitesCSV, cfg.Data.ZonesCSV, cfg.Data.CrowdCSV); err != nil {
		logger.Fatal("failed to load crowd data", zap.Error(err))
	}

	// Cache is optional; an empty address leaves the nil client in
	// place, which disables it.
	var cacheClient *cache.Client
	if cfg.Redis.Addr != "" {
		cacheClient, err = cache.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLSec)*time.Second)
		if err != nil {
			logger.Warn("redis unavailable, caching disabled", zap.Error(err))
			cacheClient = nil
		} else {
			defer cacheClient.Close()
		}
	}

	obsRepo := repository.NewObservationRepository(db)
	siteRepo := repository.NewSiteRepository(db)

	pred := predictor.NewHTTPClient(cfg.Predictor.Endpoint,
		time.Duration(cfg.Predictor.TimeoutSec)*time.Second)

	recService := service.NewRecommendationService(obsRepo, siteRepo, pred,
		cfg.Predictor.ModelMAE, cfg.Policy.SafeDensity, cfg.Policy.NearbyRadiusKm)
	forecastService := service.NewForecastService()
	kpiService := service.NewKPIService(obsRepo)

	router := api.SetupRouter(cfg, api.Handlers{
		KPI:            handler.NewKPIHandler(kpiService, cacheClient),
		Forecast:       handler.NewForecastHandler(forecastService),
		Recommendation: handler.NewRecommendationHandler(recService, cacheClient),
	})

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
