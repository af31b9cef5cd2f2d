package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"club-site.backend/internal/interfaces/http/response"
	"club-site.backend/pkg/logger"
	"club-site.backend/pkg/redis"
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	msgTooManyRequests = "Too many requests from this IP, please try again later."
)

var incrWindow = redis.IncrWindow

// RateLimitMiddleware allows max requests per client IP per fixed window.
// Counters live in Redis so every instance shares them; when Redis is
// unavailable requests are let through.
func RateLimitMiddleware(max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		hit, err := incrWindow(c.Request.Context(), rateLimitKeyPrefix+c.ClientIP(), window)
		if err != nil {
			logger.Warn(c.Request.Context(), "Rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		remaining := int64(max) - hit.Count
		if remaining < 0 {
			remaining = 0
		}
		reset := int64(math.Ceil(hit.TTL.Seconds()))
		c.Header("RateLimit-Limit", strconv.Itoa(max))
		c.Header("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("RateLimit-Reset", strconv.FormatInt(reset, 10))

		if hit.Count > int64(max) {
			c.Header("Retry-After", strconv.FormatInt(reset, 10))
			response.ErrorWithStatus(c, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}

		c.Next()
	}
}
