// File: handlers/dashboard.go
package handlers

import (
	"net/http"

	"clinicore/services/dashboard"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler exposes the dashboard stats endpoint.
type DashboardHandler struct {
	Svc dashboard.Service
}

// NewDashboardHandler constructs a new DashboardHandler.
func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

func (h *DashboardHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context(), c.GetString("clinicID"))
	if err != nil {
		utils.GetLogger().Error("failed to assemble dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
