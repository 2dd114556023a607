package models

import "time"

// Role is the closed set of account types the portal knows about.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer:
		return true
	}
	return false
}

// ApplicationStatus tracks where an application sits in the review flow.
type ApplicationStatus string

const (
	StatusSubmitted   ApplicationStatus = "submitted"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusRejected    ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the defined statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// User is a registered account, either a job seeker or an employer.
// The bcrypt hash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Resume       string    `json:"resume,omitempty"`       // job seekers only
	CompanyName  string    `json:"company_name,omitempty"` // employers only
	CreatedAt    time.Time `json:"created_at"`
}

// Job is a posting owned by the employer who created it.
type Job struct {
	ID          string    `json:"id"`
	EmployerID  string    `json:"employer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Skills      []string  `json:"skills"`
	SalaryMin   *int      `json:"salary_min,omitempty"`
	SalaryMax   *int      `json:"salary_max,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Application links a job seeker to a job they applied for.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	ApplicantID string            `json:"applicant_id"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
}
