package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"club-site.backend/internal/interfaces/http/response"
	"club-site.backend/pkg/logger"
)

// RecoveryMiddleware turns a handler panic into the standard 500 envelope.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		stack := debug.Stack()
		logger.Error(c.Request.Context(), "Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.ByteString("stack", stack),
		)

		body := gin.H{
			"success": false,
			"error":   "Internal server error",
		}
		if response.ExposeDetails() {
			body["stack"] = fmt.Sprintf("%v\n%s", recovered, stack)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
