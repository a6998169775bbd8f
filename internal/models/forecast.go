package models

// HourSlot is one row of the hourly staffing forecast table.
type HourSlot struct {
	Time             string `json:"time"` // "09:00" .. "21:00"
	ExpectedVisitors int    `json:"expected_visitors"`
	CurrentStaff     int    `json:"current_staff"`
	RecommendedStaff int    `json:"recommended_staff"`
	CostSavings      int    `json:"cost_savings"`
	Status           string `json:"status"` // Understaffed | Optimal | Overstaffed
}

// DailyPrediction is one day of the visitor trend forecast with a
// fixed-width confidence band.
type DailyPrediction struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Predicted  int    `json:"predicted"`
	LowerBound int    `json:"lower_bound"`
	UpperBound int    `json:"upper_bound"`
}

// PredictionSeries is the visitor trend forecast for one site over a
// weekly or monthly horizon.
type PredictionSeries struct {
	SiteID int64             `json:"site_id"`
	Period string            `json:"period"`
	Data   []DailyPrediction `json:"data"`
}
