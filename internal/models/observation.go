package models

// CrowdObservation is one row of the append-only crowd time series:
// one (site, zone, timestamp) measurement. Density is nominally 0-1 but
// is not hard-capped above 1.0.
type CrowdObservation struct {
	Timestamp int64   `json:"timestamp" db:"timestamp"` // Unix seconds
	SiteID    int64   `json:"site_id" db:"site_id"`
	ZoneID    int64   `json:"zone_id" db:"zone_id"`
	Count     int     `json:"count" db:"count"`
	Density   float64 `json:"density" db:"density"`
}
