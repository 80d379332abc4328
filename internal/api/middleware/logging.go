package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

func SlogRequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if logger != nil {
			attrs := []any{
				"method", method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
				"client_ip", c.ClientIP(),
			}
			if id := GetRequestID(c); id != "" {
				attrs = append(attrs, "request_id", id)
			}
			if len(c.Errors) > 0 {
				attrs = append(attrs, "error", c.Errors.String())
			}
			logger.Info("api request", attrs...)
		}
	}
}
