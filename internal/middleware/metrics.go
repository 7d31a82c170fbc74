package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dfryer1193/postapi/internal/metrics"
)

// MetricsMiddleware records request counts and latencies per route.
// The endpoint label is the route template, so /posts/1 and /posts/2
// share a series.
func MetricsMiddleware(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		m.RecordHTTPRequest(
			endpoint,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
