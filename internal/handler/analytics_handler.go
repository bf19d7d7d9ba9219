package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fieldops/internal/domain"
	"fieldops/internal/export"
	"fieldops/internal/middleware"
	"fieldops/internal/service"
)

// AnalyticsHandler handles reporting endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// parseDateRange resolves the range query parameters into concrete bounds.
// `range` takes a preset (7d, 30d, 90d, ytd, custom); unknown values resolve
// to the 30-day default by design. `start`/`end` (YYYY-MM-DD, UTC) are only
// honored together with range=custom.
func parseDateRange(c *gin.Context) (domain.DateRange, error) {
	preset := domain.ParseRangePreset(c.DefaultQuery("range", string(domain.DefaultRangePreset)))

	var customStart, customEnd *time.Time
	if startStr := c.Query("start"); startStr != "" {
		t, err := time.ParseInLocation("2006-01-02", startStr, time.UTC)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid 'start' date: must be YYYY-MM-DD")
		}
		customStart = &t
	}
	if endStr := c.Query("end"); endStr != "" {
		t, err := time.ParseInLocation("2006-01-02", endStr, time.UTC)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("invalid 'end' date: must be YYYY-MM-DD")
		}
		// Include the whole end day.
		t = t.Add(24*time.Hour - time.Second)
		customEnd = &t
	}

	return domain.ResolveDateRange(preset, customStart, customEnd, time.Now().UTC()), nil
}

// GetDashboard handles GET /api/v1/analytics/dashboard
// @Summary Get the full analytics dashboard
// @Description Resolve the date range and return KPIs, daily time series, funnel, and both waterfalls in one payload.
// @Tags analytics
// @Produce json
// @Param range query string false "Range preset: 7d, 30d, 90d, ytd, custom (default 30d)"
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {object} APIResponse "Dashboard payload"
// @Failure 401 {object} APIResponse "Missing tenant context"
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	dashboard, err := h.analyticsService.BuildDashboard(c.Request.Context(), tenantID, r)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, dashboard)
}

// GetKPIs handles GET /api/v1/analytics/kpis
// @Summary Get KPI metrics for a date range
// @Tags analytics
// @Produce json
// @Success 200 {object} APIResponse "KPI metrics"
// @Router /analytics/kpis [get]
func (h *AnalyticsHandler) GetKPIs(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	kpis, err := h.analyticsService.ComputeKPIs(c.Request.Context(), tenantID, r)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, kpis)
}

// GetTimeSeries handles GET /api/v1/analytics/timeseries
// @Summary Get daily activity series for a date range
// @Tags analytics
// @Produce json
// @Success 200 {object} APIResponse "One row per calendar day"
// @Router /analytics/timeseries [get]
func (h *AnalyticsHandler) GetTimeSeries(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	series, err := h.analyticsService.BuildTimeSeries(c.Request.Context(), tenantID, r)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, series)
}

// GetFunnel handles GET /api/v1/analytics/funnel
// @Summary Get the lead-to-paid conversion funnel for a date range
// @Tags analytics
// @Produce json
// @Success 200 {object} APIResponse "Funnel stage counts"
// @Router /analytics/funnel [get]
func (h *AnalyticsHandler) GetFunnel(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	funnel, err := h.analyticsService.BuildFunnel(c.Request.Context(), tenantID, r)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, funnel)
}

// GetRevenueWaterfall handles GET /api/v1/analytics/waterfall/revenue
// @Summary Get the billed/collected/outstanding waterfall for a date range
// @Tags analytics
// @Produce json
// @Success 200 {object} APIResponse "Revenue waterfall"
// @Router /analytics/waterfall/revenue [get]
func (h *AnalyticsHandler) GetRevenueWaterfall(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	wf, err := h.analyticsService.BuildRevenueWaterfall(c.Request.Context(), tenantID, r)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, wf)
}

// GetJobWaterfall handles GET /api/v1/analytics/waterfall/jobs
// @Summary Get the job lifecycle waterfall for a date range
// @Tags analytics
// @Produce json
// @Success 200 {object} APIResponse "Job lifecycle waterfall"
// @Router /analytics/waterfall/jobs [get]
func (h *AnalyticsHandler) GetJobWaterfall(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	wf, err := h.analyticsService.BuildJobWaterfall(c.Request.Context(), tenantID, r)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, wf)
}

// ExportDashboard handles GET /api/v1/analytics/export
// @Summary Download the dashboard as an XLSX workbook
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "XLSX workbook"
// @Router /analytics/export [get]
func (h *AnalyticsHandler) ExportDashboard(c *gin.Context) {
	tenantID, err := middleware.GetTenantID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	dashboard, err := h.analyticsService.BuildDashboard(c.Request.Context(), tenantID, r)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("analytics_%s_%s.xlsx",
		r.StartDate.UTC().Format("2006-01-02"), r.EndDate.UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := export.WriteDashboardXLSX(c.Writer, dashboard); err != nil {
		HandleError(c, err)
		return
	}
}
