package dtos

import "github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"

type RegisterJobSeekerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`

	// Optional Fields
	Resume string `json:"resume"` // resume/CV text or link
}

type RegisterEmployerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Name        string `json:"name" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`

	// Optional role hint; when present it must match the account's role.
	Role models.Role `json:"role"`
}

// TokenRequest is the form-encoded password grant accepted by
// POST /auth/token. Scope doubles as the role hint.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Scope    string `form:"scope"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
