package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"club-site.backend/pkg/logger"
)

// LoggerMiddleware logs HTTP requests using the structured logger
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		// Request and admin ids ride on the request context.
		logger.LogRequest(c.Request.Context(), logger.RequestEntry{
			Method:   c.Request.Method,
			Path:     path,
			Route:    c.FullPath(),
			Status:   c.Writer.Status(),
			Latency:  time.Since(start),
			ClientIP: c.ClientIP(),
			Size:     c.Writer.Size(),
		})
	}
}
