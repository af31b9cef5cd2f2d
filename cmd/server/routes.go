package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"club-site.backend/internal/config"
	"club-site.backend/internal/interfaces/http/handlers"
	"club-site.backend/internal/interfaces/http/middleware"
	"club-site.backend/pkg/logger"
	"club-site.backend/pkg/metrics"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	executiveHandler *handlers.ExecutiveHandler
	sponsorHandler   *handlers.SponsorHandler
	interestHandler  *handlers.InterestHandler
	inquiryHandler   *handlers.InquiryHandler
	dashboardHandler *handlers.DashboardHandler
	healthHandler    *handlers.HealthHandler
	authMiddleware   gin.HandlerFunc
}

func newRouter(cfg *config.Config, d routeDeps) *gin.Engine {
	r := gin.New()
	applyTrustedProxies(r, cfg.Server.TrustedProxies)
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.SecurityHeaders(cfg.Server.IsProduction()))
	applyCORSMiddleware(r, cfg.CORS)
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	registerHealthRoute(r, d.healthHandler)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	registerAPIRoutes(r, cfg, d)
	r.NoRoute(handlers.NotFound)
	return r
}

// applyTrustedProxies limits which peers may set X-Forwarded-For. With no
// proxies configured ClientIP is the socket address.
func applyTrustedProxies(r *gin.Engine, proxies []string) {
	if err := r.SetTrustedProxies(proxies); err != nil {
		logger.Error(context.Background(), "Invalid TRUSTED_PROXIES, trusting no proxy", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
}

func applyCORSMiddleware(r *gin.Engine, cfg config.CORSConfig) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Origin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func registerHealthRoute(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/health", h.Check)
}

func registerAPIRoutes(r *gin.Engine, cfg *config.Config, d routeDeps) {
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimit.Max, cfg.RateLimit.Window))
	api.Use(middleware.TimeoutMiddleware(cfg.Database.Timeout))

	auth := api.Group("/auth")
	{
		auth.POST("/login", d.authHandler.Login)
		auth.GET("/me", d.authMiddleware, d.authHandler.Me)
	}

	execs := api.Group("/execs")
	{
		execs.GET("", d.executiveHandler.ListVisible)

		admin := execs.Group("/admin", d.authMiddleware)
		admin.GET("", d.executiveHandler.List)
		admin.POST("", d.executiveHandler.Create)
		admin.GET("/:id", d.executiveHandler.Get)
		admin.PUT("/:id", d.executiveHandler.Update)
		admin.DELETE("/:id", d.executiveHandler.Delete)
	}

	sponsors := api.Group("/sponsors")
	{
		sponsors.GET("/active", d.sponsorHandler.GetActive)
		sponsors.POST("/inquiry", d.inquiryHandler.Submit)

		admin := sponsors.Group("/admin", d.authMiddleware)
		admin.GET("", d.sponsorHandler.List)
		admin.POST("", d.sponsorHandler.Create)
		admin.GET("/inquiries", d.inquiryHandler.List)
		admin.GET("/:id", d.sponsorHandler.Get)
		admin.PUT("/:id", d.sponsorHandler.Update)
		admin.DELETE("/:id", d.sponsorHandler.Delete)
		admin.POST("/:id/activate", d.sponsorHandler.Activate)
	}

	interest := api.Group("/interest")
	{
		interest.POST("", d.interestHandler.Submit)

		admin := interest.Group("/admin", d.authMiddleware)
		admin.GET("", d.interestHandler.List)
		admin.GET("/stats", d.interestHandler.Stats)
	}

	api.GET("/admin/dashboard", d.authMiddleware, d.dashboardHandler.Stats)
}
