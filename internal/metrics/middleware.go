package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware records request count and latency per route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		ObserveHTTPRequest(path, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
