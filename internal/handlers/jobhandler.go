package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/auth"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/dtos"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/services"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/store"
)

type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// Create is the POST /jobs/ endpoint (employers only)
func (h *JobHandler) Create(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job := h.JobService.Create(user.ID, &req)
	c.JSON(http.StatusCreated, job)
}

// List is the GET /jobs/ endpoint with optional query, location and
// skills filters (public)
func (h *JobHandler) List(c *gin.Context) {
	filter := store.JobFilter{
		Query:    c.Query("query"),
		Location: c.Query("location"),
		Skills:   splitSkills(c.QueryArray("skills")),
	}
	c.JSON(http.StatusOK, h.JobService.List(filter))
}

// Get is the GET /jobs/:id endpoint (public)
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.JobService.Get(c.Param("id"))
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Update is the PUT /jobs/:id endpoint (owning employer only)
func (h *JobHandler) Update(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.Update(c.Param("id"), user.ID, &req)
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete is the DELETE /jobs/:id endpoint (owning employer only)
func (h *JobHandler) Delete(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.JobService.Delete(c.Param("id"), user.ID); err != nil {
		errorJSON(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// splitSkills accepts both repeated skills params and comma-separated
// lists, so ?skills=go&skills=sql and ?skills=go,sql are equivalent.
func splitSkills(raw []string) []string {
	var skills []string
	for _, chunk := range raw {
		for _, s := range strings.Split(chunk, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}
	return skills
}
