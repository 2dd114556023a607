package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
)

// JobFilter narrows List results. Zero-value fields are no-ops and
// the criteria are AND-combined.
type JobFilter struct {
	Query    string   // case-insensitive substring of title or description
	Location string   // case-insensitive substring of location
	Skills   []string // posting must carry every requested skill (case-insensitive)
}

// JobUpdate carries the fields of a partial posting update.
// Nil fields are left untouched.
type JobUpdate struct {
	Title       *string
	Description *string
	Company     *string
	Location    *string
	Skills      *[]string
	SalaryMin   *int
	SalaryMax   *int
}

// JobStore is the thread-safe catalog of postings. Listings walk the
// insertion order; identical queries return results in the same order.
type JobStore struct {
	mu    sync.RWMutex
	jobs  map[string]*models.Job
	order []string
}

// NewJobStore initializes an empty catalog.
func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]*models.Job)}
}

// Create assigns the posting an id and creation time and inserts it.
func (s *JobStore) Create(job models.Job) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = uuid.NewString()
	job.CreatedAt = time.Now().UTC()

	stored := cloneJob(&job)
	s.jobs[stored.ID] = &stored
	s.order = append(s.order, stored.ID)
	return cloneJob(&stored)
}

// Get returns the posting with the given id.
func (s *JobStore) Get(id string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, ErrJobNotFound
	}
	return cloneJob(job), nil
}

// List returns every posting matching the filter, in insertion order.
func (s *JobStore) List(f JobFilter) []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Job{}
	for _, id := range s.order {
		job := s.jobs[id]
		if f.matches(job) {
			matched = append(matched, cloneJob(job))
		}
	}
	return matched
}

// ListByEmployer returns the postings owned by the given employer, in
// insertion order.
func (s *JobStore) ListByEmployer(employerID string) []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := []models.Job{}
	for _, id := range s.order {
		job := s.jobs[id]
		if job.EmployerID == employerID {
			owned = append(owned, cloneJob(job))
		}
	}
	return owned
}

// Update applies the non-nil fields of upd to the posting under the
// write lock.
func (s *JobStore) Update(id string, upd JobUpdate) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, ErrJobNotFound
	}

	if upd.Title != nil {
		job.Title = *upd.Title
	}
	if upd.Description != nil {
		job.Description = *upd.Description
	}
	if upd.Company != nil {
		job.Company = *upd.Company
	}
	if upd.Location != nil {
		job.Location = *upd.Location
	}
	if upd.Skills != nil {
		skills := make([]string, len(*upd.Skills))
		copy(skills, *upd.Skills)
		job.Skills = skills
	}
	if upd.SalaryMin != nil {
		v := *upd.SalaryMin
		job.SalaryMin = &v
	}
	if upd.SalaryMax != nil {
		v := *upd.SalaryMax
		job.SalaryMax = &v
	}
	return cloneJob(job), nil
}

// Delete removes the posting. Applications referencing it are left in
// place; readers joining against the catalog must tolerate the gap.
func (s *JobStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return ErrJobNotFound
	}
	delete(s.jobs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f JobFilter) matches(job *models.Job) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(job.Description), q) {
			return false
		}
	}
	if f.Location != "" {
		if !strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
			return false
		}
	}
	for _, want := range f.Skills {
		if !hasSkill(job.Skills, want) {
			return false
		}
	}
	return true
}

func hasSkill(skills []string, want string) bool {
	for _, s := range skills {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}

// cloneJob copies the posting deeply enough that callers cannot reach
// back into the store through the skills slice or salary pointers. A
// nil skills slice comes back empty and serializes as [] on the wire.
func cloneJob(j *models.Job) models.Job {
	out := *j
	out.Skills = make([]string, len(j.Skills))
	copy(out.Skills, j.Skills)
	if j.SalaryMin != nil {
		v := *j.SalaryMin
		out.SalaryMin = &v
	}
	if j.SalaryMax != nil {
		v := *j.SalaryMax
		out.SalaryMax = &v
	}
	return out
}
