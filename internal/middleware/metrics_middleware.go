package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnibridge/internal/pkg/metrics"
)

// Metrics counts handled requests per route and status
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
