package crowd

import (
	"time"

	"github.com/touristiq/crowd-backend-go/internal/models"
)

// MondayWeekday converts Go's Sunday-based weekday to the Monday-based
// numbering (0=Monday .. 6=Sunday) the regression model was trained on.
func MondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return MondayWeekday(t) >= 5
}

// BuildFeatures assembles the feature vector for one zone observation
// at the snapshot timestamp.
//
// The three density-memory fields (1h lag, 24h lag, 6h rolling mean)
// are all set to the single observed density: the serving path only has
// the current snapshot, while the offline trainer computed them from
// full per-zone history. Known approximation, kept deliberately.
func BuildFeatures(obs models.CrowdObservation, siteID int64, now time.Time) models.FeatureVector {
	weekend := 0
	if IsWeekend(now) {
		weekend = 1
	}

	return models.FeatureVector{
		ZoneID:        obs.ZoneID,
		SiteID:        siteID,
		Hour:          now.Hour(),
		DayOfWeek:     MondayWeekday(now),
		IsWeekend:     weekend,
		DensityLag1h:  obs.Density,
		DensityLag24h: obs.Density,
		DensityRoll6h: obs.Density,
	}
}
