package models

// KpiSnapshot is the point-in-time dashboard summary for one site.
// Average stay, foreign share and staff utilization are deterministic
// proxies derived from the visitor count, not measured values.
type KpiSnapshot struct {
	CurrentVisitors     int     `json:"current_visitors"`
	AverageStayMin      float64 `json:"average_stay_min"`
	ForeignVisitorsPct  float64 `json:"foreign_visitors_pct"`
	StaffUtilizationPct int     `json:"staff_utilization_pct"`
	LastUpdated         string  `json:"last_updated"`
}
