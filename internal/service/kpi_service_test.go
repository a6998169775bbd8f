package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKPIService(t *testing.T) (*KPIService, *sql.DB) {
	t.Helper()
	db := openTestDB(t)
	obsRepo, _ := newRepos(db)
	return NewKPIService(obsRepo), db
}

func TestKpisProxies(t *testing.T) {
	svc, db := newTestKPIService(t)
	seedDelhiSites(t, db)
	seedObservation(t, db, latestTS, 1, 1, 130, 0.4)
	seedObservation(t, db, latestTS, 1, 2, 200, 0.6)

	snap, err := svc.Kpis(1)
	require.NoError(t, err)

	// 330 visitors: stay 30 + 330%25, foreign (330%20)/100, and
	// utilization 330 out of a 500-visitor staffed capacity.
	assert.Equal(t, 330, snap.CurrentVisitors)
	assert.Equal(t, 35.0, snap.AverageStayMin)
	assert.Equal(t, 0.10, snap.ForeignVisitorsPct)
	assert.Equal(t, 66, snap.StaffUtilizationPct)
	assert.Equal(t, "2024-01-06T14:00:00Z", snap.LastUpdated)
}

func TestKpisUtilizationCapped(t *testing.T) {
	svc, db := newTestKPIService(t)
	seedDelhiSites(t, db)
	seedObservation(t, db, latestTS, 1, 1, 900, 0.9)

	snap, err := svc.Kpis(1)
	require.NoError(t, err)
	assert.Equal(t, 100, snap.StaffUtilizationPct)
}

func TestKpisIgnoresOtherSites(t *testing.T) {
	svc, db := newTestKPIService(t)
	seedDelhiSites(t, db)
	seedObservation(t, db, latestTS, 1, 1, 50, 0.2)
	seedObservation(t, db, latestTS, 2, 4, 999, 0.9)

	snap, err := svc.Kpis(1)
	require.NoError(t, err)
	assert.Equal(t, 50, snap.CurrentVisitors)
}

func TestKpisEmptyDatabase(t *testing.T) {
	svc, _ := newTestKPIService(t)

	_, err := svc.Kpis(1)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestKpisStaleSiteIsNoData(t *testing.T) {
	svc, db := newTestKPIService(t)
	seedDelhiSites(t, db)
	seedObservation(t, db, staleTS, 1, 1, 50, 0.2)
	seedObservation(t, db, latestTS, 3, 5, 10, 0.1)

	_, err := svc.Kpis(1)
	assert.ErrorIs(t, err, ErrNoData)
}
