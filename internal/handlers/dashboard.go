package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/highvale/orchard-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (dh *DashboardHandler) Overview(c *gin.Context) {
	overview, err := dh.dashboardService.Overview(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, overview)
}
