package crowd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/touristiq/crowd-backend-go/internal/models"
)

func TestMondayWeekday(t *testing.T) {
	// 2024-01-01 is a Monday.
	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, MondayWeekday(monday.AddDate(0, 0, i)))
	}
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))) // Friday
	assert.True(t, IsWeekend(time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)))  // Saturday
	assert.True(t, IsWeekend(time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)))  // Sunday
	assert.False(t, IsWeekend(time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC))) // Monday
}

func TestBuildFeatures(t *testing.T) {
	obs := models.CrowdObservation{
		Timestamp: time.Date(2024, 1, 6, 14, 0, 0, 0, time.UTC).Unix(),
		SiteID:    3,
		ZoneID:    12,
		Count:     80,
		Density:   0.42,
	}
	now := time.Date(2024, 1, 6, 14, 0, 0, 0, time.UTC) // Saturday 14:00

	fv := BuildFeatures(obs, 3, now)

	assert.Equal(t, int64(12), fv.ZoneID)
	assert.Equal(t, int64(3), fv.SiteID)
	assert.Equal(t, 14, fv.Hour)
	assert.Equal(t, 5, fv.DayOfWeek)
	assert.Equal(t, 1, fv.IsWeekend)

	// Serving-time degeneracy: all memory features carry the single
	// observed density.
	assert.Equal(t, 0.42, fv.DensityLag1h)
	assert.Equal(t, 0.42, fv.DensityLag24h)
	assert.Equal(t, 0.42, fv.DensityRoll6h)
}

func TestBuildFeaturesWeekday(t *testing.T) {
	obs := models.CrowdObservation{ZoneID: 1, Density: 0.1}
	now := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC) // Wednesday

	fv := BuildFeatures(obs, 1, now)

	assert.Equal(t, 2, fv.DayOfWeek)
	assert.Equal(t, 0, fv.IsWeekend)
	assert.Equal(t, 9, fv.Hour)
}
