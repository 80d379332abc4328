package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrasig/internal/metrics"
)

// PrometheusMetrics records request counts and latencies by route template.
func PrometheusMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
