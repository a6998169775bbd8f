package predictor

import (
	"context"

	"github.com/touristiq/crowd-backend-go/internal/models"
)

// Predictor produces a density estimate for one feature vector. The
// real regression model lives behind this interface so the engine can
// run against a deterministic stub in tests.
type Predictor interface {
	Predict(ctx context.Context, fv models.FeatureVector) (float64, error)
}
