package crowd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testMAE = 0.00245

func TestConfidenceScoreRange(t *testing.T) {
	for predicted := 0.0; predicted <= 2.0; predicted += 0.1 {
		for previous := 0.0; previous <= 2.0; previous += 0.1 {
			score := ConfidenceScore(predicted, previous, testMAE, SafeDensity)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestConfidenceScoreExact(t *testing.T) {
	// csc = 1-0.2/0.7, tsc = 1-|0.2-0.2| = 1, mrc = 1-0.00245
	// score = (0.5*0.714285... + 0.3*1 + 0.2*0.99755) * 100 = 85.67
	score := ConfidenceScore(0.2, 0.2, testMAE, SafeDensity)
	assert.InDelta(t, 85.67, score, 0.01)
}

func TestConfidenceScoreClampsCapacity(t *testing.T) {
	// Predicted above the safe threshold: capacity sub-score clamps to 0
	// instead of going negative.
	over := ConfidenceScore(1.5, 1.5, testMAE, SafeDensity)
	atThreshold := ConfidenceScore(SafeDensity, SafeDensity, testMAE, SafeDensity)
	assert.Equal(t, atThreshold, over)
}

func TestConfidenceScoreMonotonicInPredicted(t *testing.T) {
	// Holding previous fixed, a higher prediction never scores better.
	// Once both clamps engage the curve flattens, so equality is allowed.
	previous := 0.4
	prev := 101.0
	for predicted := 0.0; predicted <= 2.0; predicted += 0.05 {
		score := ConfidenceScore(predicted, previous, testMAE, SafeDensity)
		assert.LessOrEqual(t, score, prev+0.01,
			"score should be non-increasing at predicted=%v", predicted)
		prev = score
	}
}

func TestConfidenceScoreTwoDecimals(t *testing.T) {
	score := ConfidenceScore(0.123, 0.456, testMAE, SafeDensity)
	assert.Equal(t, math.Round(score*100)/100, score)
}
