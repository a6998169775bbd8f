package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/touristiq/crowd-backend-go/internal/metrics"
)

// Metrics middleware records request latency per route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// FullPath is empty for unmatched routes; skip those so the
		// label set stays bounded.
		path := c.FullPath()
		if path == "" {
			return
		}

		metrics.RequestDuration.WithLabelValues(
			path,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
