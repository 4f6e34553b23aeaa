package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-transactions/internal/platform/logger"
)

// RequestLogger writes one line per request to the service logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		if status >= 500 {
			logger.Warn("%s %s -> %d (%s)", c.Request.Method, path, status, latency)
			return
		}
		logger.Info("%s %s -> %d (%s)", c.Request.Method, path, status, latency)
	}
}
