package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/auth"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/dtos"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/services"
)

type AuthHandler struct {
	UserService *services.UserService
	Tokens      *auth.TokenService
}

// NewAuthHandler creates the handler with dependencies
func NewAuthHandler(u *services.UserService, t *auth.TokenService) *AuthHandler {
	return &AuthHandler{UserService: u, Tokens: t}
}

// RegisterJobSeeker is the POST /auth/register/jobseeker endpoint
func (h *AuthHandler) RegisterJobSeeker(c *gin.Context) {
	var req dtos.RegisterJobSeekerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.UserService.RegisterJobSeeker(&req)
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// RegisterEmployer is the POST /auth/register/employer endpoint
func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	var req dtos.RegisterEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.UserService.RegisterEmployer(&req)
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login is the POST /auth/login endpoint. It takes JSON credentials
// and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	h.respondToken(c, req.Email, req.Password, req.Role)
}

// Token is the POST /auth/token endpoint, an OAuth2-style password
// grant for form-encoded clients. The optional scope field carries a
// role hint.
func (h *AuthHandler) Token(c *gin.Context) {
	var req dtos.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	h.respondToken(c, req.Username, req.Password, models.Role(req.Scope))
}

func (h *AuthHandler) respondToken(c *gin.Context, email, password string, role models.Role) {
	user, err := h.UserService.Authenticate(email, password, role)
	if err != nil {
		errorJSON(c, err)
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		errorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
