package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"club-site.backend/pkg/metrics"
)

// MetricsMiddleware records request count and latency per matched route.
// Unmatched paths share one label so scanners cannot blow up cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
