package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/touristiq/crowd-backend-go/internal/database"
	"github.com/touristiq/crowd-backend-go/internal/models"
	"github.com/touristiq/crowd-backend-go/internal/repository"
)

// latestTS is the global latest timestamp used by fixtures; staleTS is
// an older hour that must never be served.
var (
	latestTS = time.Date(2024, 1, 6, 14, 0, 0, 0, time.UTC).Unix() // Saturday 14:00
	staleTS  = time.Date(2024, 1, 6, 13, 0, 0, 0, time.UTC).Unix()
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedSite(t *testing.T, db *sql.DB, id int64, name string, lat, lon float64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO sites (id, name, latitude, longitude) VALUES (?, ?, ?, ?)`,
		id, name, lat, lon)
	require.NoError(t, err)
}

func seedZone(t *testing.T, db *sql.DB, id int64, name string, siteID int64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO zones (id, name, site_id) VALUES (?, ?, ?)`, id, name, siteID)
	require.NoError(t, err)
}

func seedObservation(t *testing.T, db *sql.DB, ts, siteID, zoneID int64, count int, density float64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO crowd_observations (timestamp, site_id, zone_id, count, density)
		VALUES (?, ?, ?, ?, ?)`, ts, siteID, zoneID, count, density)
	require.NoError(t, err)
}

func newRepos(db *sql.DB) (*repository.ObservationRepository, *repository.SiteRepository) {
	return repository.NewObservationRepository(db), repository.NewSiteRepository(db)
}

// stubPredictor runs an arbitrary function per feature vector.
type stubPredictor struct {
	fn func(models.FeatureVector) (float64, error)
}

func (s stubPredictor) Predict(_ context.Context, fv models.FeatureVector) (float64, error) {
	return s.fn(fv)
}

// identityPredictor echoes the observed density back, which all three
// degenerate memory features carry.
func identityPredictor() stubPredictor {
	return stubPredictor{fn: func(fv models.FeatureVector) (float64, error) {
		return fv.DensityRoll6h, nil
	}}
}
