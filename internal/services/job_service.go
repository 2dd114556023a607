package services

import (
	"errors"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/dtos"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/store"
)

// ErrNotJobOwner is returned when an employer touches a posting (or its
// applications) that another employer created.
var ErrNotJobOwner = errors.New("job belongs to another employer")

type JobService struct {
	Jobs  *store.JobStore
	Users *store.UserStore
}

// NewJobService creates the service with its catalog and the account
// registry it consults for company names.
func NewJobService(jobs *store.JobStore, users *store.UserStore) *JobService {
	return &JobService{Jobs: jobs, Users: users}
}

// Create stores a new posting owned by the employer. The employer's
// registered company name takes precedence over the request body, with
// the body as fallback for accounts that carry none.
func (s *JobService) Create(employerID string, req *dtos.JobCreateRequest) models.Job {
	company := req.Company
	if employer, err := s.Users.GetByID(employerID); err == nil && employer.CompanyName != "" {
		company = employer.CompanyName
	}

	return s.Jobs.Create(models.Job{
		EmployerID:  employerID,
		Title:       req.Title,
		Description: req.Description,
		Company:     company,
		Location:    req.Location,
		Skills:      req.Skills,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
	})
}

// List returns the postings matching the filter.
func (s *JobService) List(f store.JobFilter) []models.Job {
	return s.Jobs.List(f)
}

// Get returns a single posting.
func (s *JobService) Get(id string) (models.Job, error) {
	return s.Jobs.Get(id)
}

// Update applies a partial update to a posting the employer owns.
func (s *JobService) Update(id, employerID string, req *dtos.JobUpdateRequest) (models.Job, error) {
	job, err := s.Jobs.Get(id)
	if err != nil {
		return models.Job{}, err
	}
	if job.EmployerID != employerID {
		return models.Job{}, ErrNotJobOwner
	}

	return s.Jobs.Update(id, store.JobUpdate{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Skills:      req.Skills,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
	})
}

// Delete removes a posting the employer owns. Applications already
// filed against it stay in the ledger.
func (s *JobService) Delete(id, employerID string) error {
	job, err := s.Jobs.Get(id)
	if err != nil {
		return err
	}
	if job.EmployerID != employerID {
		return ErrNotJobOwner
	}
	return s.Jobs.Delete(id)
}
