package router

import (
	"github.com/gin-gonic/gin"

	"fieldops/internal/config"
	"fieldops/internal/handler"
	"fieldops/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	analyticsH *handler.AnalyticsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Reporting routes - tenant scope required on everything
	analytics := v1.Group("/analytics")
	analytics.Use(middleware.TenantContext())
	analytics.GET("/dashboard", analyticsH.GetDashboard)
	analytics.GET("/kpis", analyticsH.GetKPIs)
	analytics.GET("/timeseries", analyticsH.GetTimeSeries)
	analytics.GET("/funnel", analyticsH.GetFunnel)
	analytics.GET("/waterfall/revenue", analyticsH.GetRevenueWaterfall)
	analytics.GET("/waterfall/jobs", analyticsH.GetJobWaterfall)
	analytics.GET("/export", analyticsH.ExportDashboard)

	return r
}
