package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/auth"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/dtos"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

// NewApplicationHandler creates the handler with dependencies
func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a}
}

// Apply is the POST /applications/ endpoint (job seekers only)
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.ApplicationService.Apply(user.ID, &req)
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListMine is the GET /applications/my endpoint (job seekers only)
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	c.JSON(http.StatusOK, h.ApplicationService.ListByApplicant(user.ID))
}

// ListForJob is the GET /applications/for-job/:job_id endpoint
// (owning employer only)
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	apps, err := h.ApplicationService.ListByJob(c.Param("job_id"), user.ID)
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Review is the PUT /applications/:id/review endpoint (owning
// employer only)
func (h *ApplicationHandler) Review(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dtos.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.ApplicationService.Review(c.Param("id"), user.ID, req.Status)
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
