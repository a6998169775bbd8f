package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/touristiq/crowd-backend-go/internal/models"
)

// HTTPClient calls the model-serving process over HTTP. The serving
// process wraps the offline-trained regression model; this client only
// ships feature vectors and reads densities back.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a predictor client with a hard per-call timeout.
// The engine has no degraded mode for a slow model, so the timeout is
// the only backpressure.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type predictResponse struct {
	Density float64 `json:"density"`
}

// Predict sends one feature vector to POST {base}/predict and returns
// the predicted density.
func (c *HTTPClient) Predict(ctx context.Context, fv models.FeatureVector) (float64, error) {
	body, err := json.Marshal(fv)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("predict request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("predict request returned status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("failed to decode predict response: %w", err)
	}

	return out.Density, nil
}
