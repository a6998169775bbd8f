package crowd

import "math"

// Confidence sub-score weights. Capacity headroom dominates, trend
// stability second, model reliability last.
const (
	capacityWeight    = 0.5
	stabilityWeight   = 0.3
	reliabilityWeight = 0.2
)

// ConfidenceScore blends predicted density, the last observed density
// and the deployed model's mean absolute error into a 0-100 score,
// rounded to two decimals.
//
// The capacity and stability sub-scores are clamped at zero before
// weighting: a prediction above the safe threshold or a swing larger
// than a full density unit contributes nothing rather than a penalty.
// The reliability sub-score assumes modelError < 1.
func ConfidenceScore(predicted, previous, modelError, safeThreshold float64) float64 {
	csc := math.Max(0, 1-predicted/safeThreshold)
	tsc := math.Max(0, 1-math.Abs(predicted-previous))
	mrc := 1 - modelError

	score := (capacityWeight*csc + stabilityWeight*tsc + reliabilityWeight*mrc) * 100
	return math.Round(score*100) / 100
}
