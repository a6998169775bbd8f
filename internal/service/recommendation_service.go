package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/touristiq/crowd-backend-go/internal/crowd"
	"github.com/touristiq/crowd-backend-go/internal/metrics"
	"github.com/touristiq/crowd-backend-go/internal/models"
	"github.com/touristiq/crowd-backend-go/internal/predictor"
	"github.com/touristiq/crowd-backend-go/internal/repository"
	"github.com/touristiq/crowd-backend-go/internal/spatial"
	"github.com/touristiq/crowd-backend-go/pkg/logger"
)

const maxRecommendedZones = 3

// Fallback tiers, ordered by disruption to the visitor's plan: switch
// zone within the site, walk to a nearby site, come back at a quieter
// hour.
const (
	adviceZoneSwitch = "You can visit now. Switching to a recommended zone will improve comfort."
	adviceNearbySite = "This site is crowded right now. A nearby site may be more comfortable."
	adviceOffPeak    = "This site is crowded right now. Try visiting early morning or late evening."
)

// Fixed off-peak suggestions for the last-resort tier.
var offPeakWindows = []string{"7:00 AM – 9:00 AM", "6:30 PM – 8:00 PM"}

// RecommendationService runs the crowd-aware recommendation pipeline:
// snapshot retrieval, per-zone density prediction, confidence scoring
// and tiered fallback selection.
type RecommendationService struct {
	observations *repository.ObservationRepository
	sites        *repository.SiteRepository
	predictor    predictor.Predictor

	modelMAE       float64
	safeDensity    float64
	nearbyRadiusKm float64
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	observations *repository.ObservationRepository,
	sites *repository.SiteRepository,
	pred predictor.Predictor,
	modelMAE, safeDensity, nearbyRadiusKm float64,
) *RecommendationService {
	return &RecommendationService{
		observations:   observations,
		sites:          sites,
		predictor:      pred,
		modelMAE:       modelMAE,
		safeDensity:    safeDensity,
		nearbyRadiusKm: nearbyRadiusKm,
	}
}

// Recommend builds the recommendation response for one site at the
// global latest timestamp. Returns ErrNoData when the site has no rows
// at that timestamp. Per-zone failures (unknown zone id, predictor
// errors) skip the zone and are reported in the skipped list; only a
// store failure aborts the request.
func (s *RecommendationService) Recommend(ctx context.Context, siteID int64) (*models.RecommendationResponse, error) {
	latest, err := s.observations.LatestTimestamp()
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, err
	}

	snapshot, err := s.observations.SnapshotAt(siteID, latest)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, ErrNoData
	}

	now := time.Unix(latest, 0).UTC()

	totalPeople := 0
	densities := make([]float64, len(snapshot))
	for i, obs := range snapshot {
		totalPeople += obs.Count
		densities[i] = obs.Density
	}
	avgDensity := stat.Mean(densities, nil)

	recommended := make([]models.ZoneRecommendation, 0, len(snapshot))
	var skipped []models.SkippedZone

	for _, obs := range snapshot {
		fv := crowd.BuildFeatures(obs, siteID, now)

		predicted, err := s.predictor.Predict(ctx, fv)
		if err != nil {
			// Predictor failure is not "zone unsafe": skip the zone,
			// surface it, keep going.
			metrics.PredictionsFailed.Inc()
			logger.Warn("zone prediction failed",
				zap.Int64("site_id", siteID),
				zap.Int64("zone_id", obs.ZoneID),
				zap.Error(err),
			)
			skipped = append(skipped, models.SkippedZone{
				ZoneID: obs.ZoneID,
				Reason: skipReasonPredictorUnavailable,
			})
			continue
		}
		metrics.PredictionsGenerated.Inc()

		if predicted >= s.safeDensity {
			continue
		}

		zone, err := s.sites.ZoneByID(obs.ZoneID)
		if err != nil {
			return nil, err
		}
		if zone == nil {
			skipped = append(skipped, models.SkippedZone{
				ZoneID: obs.ZoneID,
				Reason: skipReasonUnknownZone,
			})
			continue
		}

		recommended = append(recommended, models.ZoneRecommendation{
			ZoneID:          obs.ZoneID,
			ZoneName:        zone.Name,
			ExpectedDensity: string(crowd.Classify(predicted)),
			Confidence:      crowd.ConfidenceScore(predicted, obs.Density, s.modelMAE, s.safeDensity),
		})
	}

	// Stable sort keeps snapshot row order among equal confidences.
	sort.SliceStable(recommended, func(i, j int) bool {
		return recommended[i].Confidence > recommended[j].Confidence
	})
	if len(recommended) > maxRecommendedZones {
		recommended = recommended[:maxRecommendedZones]
	}

	resp := &models.RecommendationResponse{
		CurrentStatus: models.CurrentStatus{
			PeoplePresent: totalPeople,
			CrowdLevel:    string(crowd.Classify(avgDensity)),
		},
		RecommendedZones: recommended,
		SkippedZones:     skipped,
	}

	// Tier A: a zone switch within the site.
	if len(recommended) > 0 {
		resp.SystemAdvice = adviceZoneSwitch
		metrics.RecommendationsServed.WithLabelValues("zone_switch").Inc()
		return resp, nil
	}

	// Tier B: another site within walking range.
	nearby, err := s.nearbySites(siteID)
	if err != nil {
		return nil, err
	}
	if len(nearby) > 0 {
		resp.SystemAdvice = adviceNearbySite
		resp.NearbySites = nearby
		metrics.RecommendationsServed.WithLabelValues("nearby_site").Inc()
		return resp, nil
	}

	// Tier C: come back off-peak.
	resp.SystemAdvice = adviceOffPeak
	resp.SuggestedWindows = offPeakWindows
	metrics.RecommendationsServed.WithLabelValues("off_peak").Inc()
	return resp, nil
}

// nearbySites lists every other site within the configured radius of
// the given one, in reference-table order. Distances are rounded to
// two decimals. An unknown origin site yields an empty list.
func (s *RecommendationService) nearbySites(siteID int64) ([]models.NearbySite, error) {
	origin, err := s.sites.SiteByID(siteID)
	if err != nil {
		return nil, err
	}
	if origin == nil {
		return nil, nil
	}

	all, err := s.sites.AllSites()
	if err != nil {
		return nil, err
	}

	var nearby []models.NearbySite
	for _, site := range all {
		if site.ID == siteID {
			continue
		}
		d := spatial.DistanceKm(origin.Latitude, origin.Longitude, site.Latitude, site.Longitude)
		if d <= s.nearbyRadiusKm {
			nearby = append(nearby, models.NearbySite{
				SiteName:   site.Name,
				DistanceKm: math.Round(d*100) / 100,
			})
		}
	}
	return nearby, nil
}
