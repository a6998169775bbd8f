package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touristiq/crowd-backend-go/internal/database"
	"github.com/touristiq/crowd-backend-go/internal/repository"
)

func TestLoadAll(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	loader := NewLoader(db)
	require.NoError(t, loader.LoadAll(
		"testdata/sites.csv",
		"testdata/zones.csv",
		"testdata/crowd.csv",
	))

	sites := repository.NewSiteRepository(db)
	observations := repository.NewObservationRepository(db)

	all, err := sites.AllSites()
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Red Fort", all[0].Name)
	assert.InDelta(t, 28.6562, all[0].Latitude, 1e-9)

	zone, err := sites.ZoneByID(2)
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, "Museum Hall", zone.Name)
	assert.Equal(t, int64(1), zone.SiteID)

	total, err := observations.CountAll()
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)

	ts, err := observations.LatestTimestamp()
	require.NoError(t, err)
	want := time.Date(2024, 1, 5, 11, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, want, ts)
}

func TestLoadSitesMissingFile(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = NewLoader(db).LoadSites("testdata/does-not-exist.csv")
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
		ok    bool
	}{
		{"space separated", "2024-01-05 10:00:00", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), true},
		{"iso8601", "2024-01-05T10:00:00", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), true},
		{"rfc3339", "2024-01-05T10:00:00Z", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), true},
		{"padded", "  2024-01-05 10:00:00 ", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), true},
		{"garbage", "yesterday", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.value)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Unix(), got)
		})
	}
}
