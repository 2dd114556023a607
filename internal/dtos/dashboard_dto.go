package dtos

import "github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"

// UserSummary is the identity block embedded in dashboard payloads.
type UserSummary struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

// JobSummary is the compact posting view joined into dashboards.
type JobSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
}

// ApplicationWithJob pairs an application with the posting it targets.
// Job is null when the posting was deleted after the application was
// filed.
type ApplicationWithJob struct {
	models.Application
	Job *JobSummary `json:"job"`
}

type JobSeekerDashboard struct {
	User            UserSummary          `json:"user"`
	NumApplications int                  `json:"num_applications"`
	Applications    []ApplicationWithJob `json:"applications"`
}

// JobWithStats decorates a posting with its application tallies.
type JobWithStats struct {
	models.Job
	NumApplications int                              `json:"num_applications"`
	StatusCounts    map[models.ApplicationStatus]int `json:"status_counts"`
}

type EmployerDashboard struct {
	User            UserSummary    `json:"user"`
	NumJobs         int            `json:"num_jobs"`
	NumApplications int            `json:"num_applications"`
	Jobs            []JobWithStats `json:"jobs"`
}
