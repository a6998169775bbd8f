package models

// FeatureVector is the input record for the density regression model.
//
// The field set and its order match the columns the model was trained
// on. An ordering mismatch produces silently wrong predictions, so the
// vector is always built through this named-field struct and never as
// an ad-hoc positional list.
type FeatureVector struct {
	ZoneID        int64   `json:"zone_id"`
	SiteID        int64   `json:"site_id"`
	Hour          int     `json:"hour"`        // 0-23
	DayOfWeek     int     `json:"dow"`         // 0=Monday .. 6=Sunday
	IsWeekend     int     `json:"is_weekend"`  // 0|1
	DensityLag1h  float64 `json:"density_lag_1h"`
	DensityLag24h float64 `json:"density_lag_24h"`
	DensityRoll6h float64 `json:"density_roll_6h"`
}
