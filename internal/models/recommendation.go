package models

// ZoneRecommendation is one recommendable zone with its predicted
// density label and confidence score (0-100, two decimals).
type ZoneRecommendation struct {
	ZoneID          int64   `json:"zone_id"`
	ZoneName        string  `json:"zone_name"`
	ExpectedDensity string  `json:"expected_density"`
	Confidence      float64 `json:"confidence"`
}

// SkippedZone reports a zone that could not be scored (unknown zone id,
// predictor failure). Surfaced per item so a degraded zone never hides
// behind a silently shorter list.
type SkippedZone struct {
	ZoneID int64  `json:"zone_id"`
	Reason string `json:"reason"`
}

// NearbySite is a geographic alternative within walking range.
type NearbySite struct {
	SiteName   string  `json:"site_name"`
	DistanceKm float64 `json:"distance_km"`
}

// CurrentStatus is the headline crowd state of the requested site.
type CurrentStatus struct {
	PeoplePresent int    `json:"people_present"`
	CrowdLevel    string `json:"crowd_level"`
}

// RecommendationResponse is the full payload of the recommendation
// engine. Exactly one of the three advice tiers populates its list:
// recommended zones, nearby sites, or suggested time windows.
type RecommendationResponse struct {
	CurrentStatus    CurrentStatus        `json:"current_status"`
	SystemAdvice     string               `json:"system_advice"`
	RecommendedZones []ZoneRecommendation `json:"recommended_zones"`
	NearbySites      []NearbySite         `json:"nearby_sites,omitempty"`
	SuggestedWindows []string             `json:"suggested_windows,omitempty"`
	SkippedZones     []SkippedZone        `json:"skipped_zones,omitempty"`
}
