package service

import "github.com/rotisserie/eris"

// Service-level error taxonomy. Handlers translate these into HTTP
// responses; nothing here is fatal to the process.
var (
	// ErrNoData: empty snapshot, either globally or for the requested
	// site at the global latest timestamp.
	ErrNoData = eris.New("no crowd data available")

	// ErrInvalidPeriod: forecast period outside {weekly, monthly}.
	ErrInvalidPeriod = eris.New("period must be weekly or monthly")
)

// Per-zone skip reasons surfaced in RecommendationResponse. These
// degrade a single zone, never the whole request.
const (
	skipReasonUnknownZone          = "unknown zone"
	skipReasonPredictorUnavailable = "predictor unavailable"
)
