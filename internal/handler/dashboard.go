package handler

import (
	"net/http"

	"tunisiaclean/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the demo user dashboard
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.dashboardService.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
