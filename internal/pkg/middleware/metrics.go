package middleware

import (
	"strconv"
	"time"

	"stars_admin/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		collector := metrics.GetGlobalCollector()
		if collector == nil {
			return
		}

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		collector.RecordHTTPRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
