package service

import (
	"fmt"
	"time"

	"github.com/touristiq/crowd-backend-go/internal/crowd"
	"github.com/touristiq/crowd-backend-go/internal/models"
)

// Staffing model constants shared with the KPI aggregator: one staff
// member handles roughly this many visitors.
const (
	staffCapacityPerPerson = 50
	baselineStaff          = 1
)

// ForecastService produces the deterministic staffing and visitor
// projections. These intentionally bypass the trained density model:
// the arithmetic is a stand-in kept exactly compatible with the
// dashboard that consumes it. A candidate for real forecasting later.
type ForecastService struct {
	now func() time.Time
}

// NewForecastService creates a new forecast service
func NewForecastService() *ForecastService {
	return &ForecastService{now: time.Now}
}

// HourlyForecast derives the staffing table for the 09:00-21:00 window.
// Expected visitors are a deterministic function of (hour, site); no
// external data is consulted.
func (s *ForecastService) HourlyForecast(siteID int64) []models.HourSlot {
	slots := make([]models.HourSlot, 0, 13)

	for hour := 9; hour < 22; hour++ {
		expected := int((int64(hour) * siteID * 7) % 180)

		recommended := expected / staffCapacityPerPerson
		if recommended < 1 {
			recommended = 1
		}

		var status string
		switch {
		case expected > recommended*60:
			status = "Understaffed"
		case expected < recommended*30:
			status = "Overstaffed"
		default:
			status = "Optimal"
		}

		savings := (1 - recommended) * 20
		if savings < 0 {
			savings = 0
		}

		slots = append(slots, models.HourSlot{
			Time:             fmt.Sprintf("%02d:00", hour),
			ExpectedVisitors: expected,
			CurrentStaff:     baselineStaff,
			RecommendedStaff: recommended,
			CostSavings:      savings,
			Status:           status,
		})
	}

	return slots
}

// VisitorPrediction projects per-day visitor counts over a weekly
// (7-day, ±15 band) or monthly (30-day, ±25 band, compounding trend)
// horizon. Returns ErrInvalidPeriod for any other period.
func (s *ForecastService) VisitorPrediction(siteID int64, period string) (*models.PredictionSeries, error) {
	today := s.now()

	series := &models.PredictionSeries{
		SiteID: siteID,
		Period: period,
	}

	switch period {
	case "weekly":
		// Short-term, more reactive.
		for i := 0; i < 7; i++ {
			date := today.AddDate(0, 0, i)
			base := float64(siteID*40 + int64(i)*12)
			if crowd.IsWeekend(date) {
				base *= 1.25
			}
			predicted := int(base)
			series.Data = append(series.Data, models.DailyPrediction{
				Date:       date.Format("2006-01-02"),
				Predicted:  predicted,
				LowerBound: clampZero(predicted - 15),
				UpperBound: predicted + 15,
			})
		}
	case "monthly":
		// Long-term, smoother trend with a compounding daily increment
		// and stronger weekend seasonality.
		rolling := float64(siteID * 35)
		for i := 0; i < 30; i++ {
			date := today.AddDate(0, 0, i)
			rolling += 1.2
			if crowd.IsWeekend(date) {
				rolling *= 1.15
			}
			predicted := int(rolling)
			series.Data = append(series.Data, models.DailyPrediction{
				Date:       date.Format("2006-01-02"),
				Predicted:  predicted,
				LowerBound: clampZero(predicted - 25),
				UpperBound: predicted + 25,
			})
		}
	default:
		return nil, ErrInvalidPeriod
	}

	return series, nil
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
