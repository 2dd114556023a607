package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/auth"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/services"
)

type DashboardHandler struct {
	DashboardService *services.DashboardService
}

// NewDashboardHandler creates the handler with dependencies
func NewDashboardHandler(d *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{DashboardService: d}
}

// JobSeeker is the GET /dashboard/jobseeker endpoint
func (h *DashboardHandler) JobSeeker(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	dash, err := h.DashboardService.JobSeeker(user.ID)
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// Employer is the GET /dashboard/employer endpoint
func (h *DashboardHandler) Employer(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	dash, err := h.DashboardService.Employer(user.ID)
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
