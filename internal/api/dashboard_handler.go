package api

import (
	"net/http"

	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the coach's business summary.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats godoc
// @Summary Dashboard summary
// @Description Client counts, monthly recurring revenue and most recent clients.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	coachID, err := getCoachIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify coach from token.")
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), coachID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute dashboard stats.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
