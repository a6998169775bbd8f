package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touristiq/crowd-backend-go/internal/database"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func insertObservation(t *testing.T, db *sql.DB, ts, siteID, zoneID int64) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO crowd_observations (timestamp, site_id, zone_id, count, density)
		VALUES (?, ?, ?, ?, ?)`, ts, siteID, zoneID, 10, 0.5)
	require.NoError(t, err)
}

func TestLatestTimestampEmptyTable(t *testing.T) {
	repo := NewObservationRepository(openTestDB(t))

	_, err := repo.LatestTimestamp()
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLatestTimestampIsGlobal(t *testing.T) {
	db := openTestDB(t)
	repo := NewObservationRepository(db)

	// Site 1 stops reporting at 2000; site 2 carries the maximum.
	insertObservation(t, db, 1000, 1, 1)
	insertObservation(t, db, 2000, 1, 1)
	insertObservation(t, db, 3000, 2, 9)

	latest, err := repo.LatestTimestamp()
	require.NoError(t, err)
	assert.Equal(t, int64(3000), latest)

	// The lagging site has nothing at the global maximum.
	snapshot, err := repo.SnapshotAt(1, latest)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestSnapshotAtPreservesInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewObservationRepository(db)

	for _, zoneID := range []int64{7, 3, 5} {
		insertObservation(t, db, 1000, 1, zoneID)
	}
	insertObservation(t, db, 999, 1, 2) // older hour, excluded

	snapshot, err := repo.SnapshotAt(1, 1000)
	require.NoError(t, err)

	require.Len(t, snapshot, 3)
	assert.Equal(t, int64(7), snapshot[0].ZoneID)
	assert.Equal(t, int64(3), snapshot[1].ZoneID)
	assert.Equal(t, int64(5), snapshot[2].ZoneID)
}
