package dtos

import "github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"

type ApplyRequest struct {
	JobID string `json:"job_id" binding:"required"`

	// Optional Fields
	CoverLetter string `json:"cover_letter"`
}

type ReviewRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}
