package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"club-site.backend/internal/interfaces/http/response"
	"club-site.backend/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// PingFunc checks one backing service.
type PingFunc func(ctx context.Context) error

// HealthHandler reports process and dependency health. Only the database is
// critical; Redis being down degrades rate limiting but not the API.
type HealthHandler struct {
	pingDB    PingFunc
	pingRedis PingFunc
	now       func() time.Time
}

func NewHealthHandler(pingDB, pingRedis PingFunc) *HealthHandler {
	return &HealthHandler{
		pingDB:    pingDB,
		pingRedis: pingRedis,
		now:       time.Now,
	}
}

// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	dbStatus := probe(ctx, "database", h.pingDB)
	redisStatus := probe(ctx, "redis", h.pingRedis)

	status, code := "OK", http.StatusOK
	if dbStatus != "up" {
		status, code = "DEGRADED", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
		"services": gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}

func probe(ctx context.Context, name string, ping PingFunc) string {
	if ping == nil {
		return "disabled"
	}
	if err := ping(ctx); err != nil {
		logger.Warn(ctx, "Health check failed", zap.String("service", name), zap.Error(err))
		return "down"
	}
	return "up"
}

// NotFound answers unmatched routes.
func NotFound(c *gin.Context) {
	response.ErrorWithStatus(c, http.StatusNotFound, "Not found - "+c.Request.URL.Path)
}
