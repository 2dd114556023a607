package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
)

// ApplicationStore is the thread-safe ledger of applications. Like the
// job catalog it walks insertion order for listings. The store owns the
// one-application-per-seeker-per-job rule.
type ApplicationStore struct {
	mu    sync.RWMutex
	apps  map[string]*models.Application
	order []string
}

// NewApplicationStore initializes an empty ledger.
func NewApplicationStore() *ApplicationStore {
	return &ApplicationStore{apps: make(map[string]*models.Application)}
}

// Create assigns the application an id and timestamp and inserts it.
// It fails with ErrAlreadyApplied when the applicant already has an
// application for the same job. The duplicate scan runs under the
// write lock.
func (s *ApplicationStore) Create(app models.Application) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		existing := s.apps[id]
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return models.Application{}, ErrAlreadyApplied
		}
	}

	app.ID = uuid.NewString()
	app.AppliedAt = time.Now().UTC()

	stored := app
	s.apps[stored.ID] = &stored
	s.order = append(s.order, stored.ID)
	return app, nil
}

// Get returns the application with the given id.
func (s *ApplicationStore) Get(id string) (models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, ok := s.apps[id]
	if !ok {
		return models.Application{}, ErrApplicationNotFound
	}
	return *app, nil
}

// ListByApplicant returns the applicant's applications in the order
// they were filed.
func (s *ApplicationStore) ListByApplicant(applicantID string) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mine := []models.Application{}
	for _, id := range s.order {
		app := s.apps[id]
		if app.ApplicantID == applicantID {
			mine = append(mine, *app)
		}
	}
	return mine
}

// ListByJob returns every application filed against the job, in the
// order they were filed.
func (s *ApplicationStore) ListByJob(jobID string) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filed := []models.Application{}
	for _, id := range s.order {
		app := s.apps[id]
		if app.JobID == jobID {
			filed = append(filed, *app)
		}
	}
	return filed
}

// SetStatus overwrites the application's status.
func (s *ApplicationStore) SetStatus(id string, status models.ApplicationStatus) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, ok := s.apps[id]
	if !ok {
		return models.Application{}, ErrApplicationNotFound
	}
	app.Status = status
	return *app, nil
}
