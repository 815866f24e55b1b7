package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-admin-svc/internal/service"
	"hostel-admin-svc/pkg/logger"
	"hostel-admin-svc/pkg/utils"
)

// DashboardHandler handles warden dashboard HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard handles GET /api/v1/warden/dashboard
// @Summary Warden occupancy dashboard
// @Description Aggregate occupancy figures plus a per-room breakdown
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.DashboardResponse} "Dashboard retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/warden/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.dashboardService.GetOccupancySummary()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get dashboard")
		utils.InternalServerErrorResponse(c, "Failed to get dashboard", err)
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved successfully", summary)
}
