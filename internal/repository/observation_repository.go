package repository

import (
	"database/sql"
	"fmt"

	"github.com/touristiq/crowd-backend-go/internal/models"
)

// ObservationRepository handles database operations for the crowd
// observation time series.
type ObservationRepository struct {
	db *sql.DB
}

// NewObservationRepository creates a new observation repository
func NewObservationRepository(db *sql.DB) *ObservationRepository {
	return &ObservationRepository{db: db}
}

// LatestTimestamp returns the maximum timestamp across the entire
// observation table, not per site. A site whose data lags the global
// maximum therefore yields an empty snapshot. Returns sql.ErrNoRows
// when the table is empty.
func (r *ObservationRepository) LatestTimestamp() (int64, error) {
	var ts sql.NullInt64
	err := r.db.QueryRow(`SELECT MAX(timestamp) FROM crowd_observations`).Scan(&ts)
	if err != nil {
		return 0, fmt.Errorf("failed to query latest timestamp: %w", err)
	}
	if !ts.Valid {
		return 0, sql.ErrNoRows
	}
	return ts.Int64, nil
}

// SnapshotAt returns all observations for a site at one timestamp, in
// insertion order. Ties in downstream confidence ranking are broken by
// this order, so it must stay stable.
func (r *ObservationRepository) SnapshotAt(siteID, timestamp int64) ([]models.CrowdObservation, error) {
	rows, err := r.db.Query(`
		SELECT timestamp, site_id, zone_id, count, density
		FROM crowd_observations
		WHERE site_id = ? AND timestamp = ?
		ORDER BY rowid`,
		siteID, timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	var observations []models.CrowdObservation
	for rows.Next() {
		var obs models.CrowdObservation
		if err := rows.Scan(&obs.Timestamp, &obs.SiteID, &obs.ZoneID, &obs.Count, &obs.Density); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		observations = append(observations, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate observations: %w", err)
	}

	return observations, nil
}

// CountAll returns the total number of observation rows.
func (r *ObservationRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM crowd_observations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count observations: %w", err)
	}
	return count, nil
}
