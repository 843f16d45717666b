package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskboard/taskboard-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns aggregate counts over the caller's visible tasks
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, role, ok := caller(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Stats(userID, role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
