package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crowd_backend_predictions_generated_total",
		Help: "Total number of zone density predictions computed.",
	})
	PredictionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crowd_backend_predictions_failed_total",
		Help: "Total number of zone density prediction failures.",
	})
	RecommendationsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crowd_backend_recommendations_served_total",
		Help: "Total recommendations served, partitioned by fallback tier.",
	}, []string{"tier"})
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "crowd_backend_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
	}, []string{"path", "method", "status"})
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crowd_backend_cache_hits_total",
		Help: "Total response cache hits.",
	})
)
