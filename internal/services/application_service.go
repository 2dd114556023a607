package services

import (
	"errors"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/dtos"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/store"
)

// ErrInvalidStatus is returned for review statuses outside the defined
// set.
var ErrInvalidStatus = errors.New("invalid application status")

type ApplicationService struct {
	Applications *store.ApplicationStore
	Jobs         *store.JobStore
}

// NewApplicationService creates the service with its ledger and the job
// catalog it validates against.
func NewApplicationService(applications *store.ApplicationStore, jobs *store.JobStore) *ApplicationService {
	return &ApplicationService{Applications: applications, Jobs: jobs}
}

// Apply files an application for the job. The job must exist, and each
// seeker gets one application per job.
func (s *ApplicationService) Apply(applicantID string, req *dtos.ApplyRequest) (models.Application, error) {
	if _, err := s.Jobs.Get(req.JobID); err != nil {
		return models.Application{}, err
	}

	return s.Applications.Create(models.Application{
		JobID:       req.JobID,
		ApplicantID: applicantID,
		CoverLetter: req.CoverLetter,
		Status:      models.StatusSubmitted,
	})
}

// ListByApplicant returns the seeker's own applications.
func (s *ApplicationService) ListByApplicant(applicantID string) []models.Application {
	return s.Applications.ListByApplicant(applicantID)
}

// ListByJob returns the applications for a job the employer owns.
func (s *ApplicationService) ListByJob(jobID, employerID string) ([]models.Application, error) {
	job, err := s.Jobs.Get(jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, ErrNotJobOwner
	}
	return s.Applications.ListByJob(jobID), nil
}

// Review sets the application's status. Only the employer owning the
// referenced job may review it; an application whose job was deleted
// has no owner left, so nobody can.
func (s *ApplicationService) Review(appID, employerID string, status models.ApplicationStatus) (models.Application, error) {
	if !status.Valid() {
		return models.Application{}, ErrInvalidStatus
	}

	app, err := s.Applications.Get(appID)
	if err != nil {
		return models.Application{}, err
	}

	job, err := s.Jobs.Get(app.JobID)
	if err != nil || job.EmployerID != employerID {
		return models.Application{}, ErrNotJobOwner
	}

	return s.Applications.SetStatus(appID, status)
}
