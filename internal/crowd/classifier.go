package crowd

// Label is an ordinal crowd density band.
type Label string

const (
	LabelVeryLow     Label = "Very Low"
	LabelModerate    Label = "Moderate"
	LabelHigh        Label = "High"
	LabelOvercrowded Label = "Overcrowded"
)

// SafeDensity is the policy cutoff below which a zone is considered
// recommendable. A tunable constant, not derived from data.
const SafeDensity = 0.7

// Classify maps a continuous density value to its band. Total over all
// floats: density above 1.0 is possible and negative input (impossible
// for a valid density) falls into the lowest band.
func Classify(density float64) Label {
	switch {
	case density < 0.3:
		return LabelVeryLow
	case density < 0.6:
		return LabelModerate
	case density < 0.8:
		return LabelHigh
	default:
		return LabelOvercrowded
	}
}

// Severity returns the rank of a label in ascending crowding order,
// starting at 0 for Very Low.
func (l Label) Severity() int {
	switch l {
	case LabelVeryLow:
		return 0
	case LabelModerate:
		return 1
	case LabelHigh:
		return 2
	default:
		return 3
	}
}
