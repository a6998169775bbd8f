package predictor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touristiq/crowd-backend-go/internal/models"
)

func TestHTTPClientPredict(t *testing.T) {
	var got models.FeatureVector
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]float64{"density": 0.42})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	fv := models.FeatureVector{ZoneID: 7, SiteID: 1, Hour: 14, DayOfWeek: 5, IsWeekend: 1,
		DensityLag1h: 0.3, DensityLag24h: 0.3, DensityRoll6h: 0.3}

	density, err := client.Predict(context.Background(), fv)
	require.NoError(t, err)
	assert.Equal(t, 0.42, density)
	assert.Equal(t, fv, got)
}

func TestHTTPClientPredictServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.Predict(context.Background(), models.FeatureVector{})
	assert.Error(t, err)
}

func TestHTTPClientPredictTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 20*time.Millisecond)
	_, err := client.Predict(context.Background(), models.FeatureVector{})
	assert.Error(t, err)
}
