package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ansh1vohra/edublog-server/logger"
)

// RequestLogging logs one line per request with method, path, status and
// elapsed time.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		durationMillis := time.Since(start).Milliseconds()

		logger.InfoWithFields("completed request", logger.Fields{
			"method":      method,
			"path":        path,
			"status":      status,
			"duration_ms": durationMillis,
		})
	}
}
