package handler

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/application/service"
	"github.com/sangkips/solarpower/internal/presentation/http/dto/response"
)

// DashboardHandler handles the staff overview and the analytics report
type DashboardHandler struct {
	dashboardService *service.DashboardService
	analyticsService *service.AnalyticsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService, analyticsService *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		analyticsService: analyticsService,
	}
}

// Dashboard renders the staff overview
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Title": "Dashboard",
		"Stats": stats,
	})
}

// Analytics renders the business analytics page with the chart data embedded
func (h *DashboardHandler) Analytics(c *gin.Context) {
	report, err := h.analyticsService.GetReport(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "admin_analytics.html", gin.H{
		"Title":     "Business analytics",
		"Report":    report,
		"ChartData": template.JS(payload),
	})
}

// AnalyticsData returns the chart payload as JSON
func (h *DashboardHandler) AnalyticsData(c *gin.Context) {
	report, err := h.analyticsService.GetReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics retrieved successfully", report)
}
