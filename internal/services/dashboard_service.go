package services

import (
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/dtos"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/store"
)

// DashboardService composes read-only views over the catalog and the
// ledger. It holds no state of its own.
type DashboardService struct {
	Users        *store.UserStore
	Jobs         *store.JobStore
	Applications *store.ApplicationStore
}

// NewDashboardService creates the service with the stores it reads.
func NewDashboardService(users *store.UserStore, jobs *store.JobStore, applications *store.ApplicationStore) *DashboardService {
	return &DashboardService{Users: users, Jobs: jobs, Applications: applications}
}

// JobSeeker builds the seeker's view: every application joined with a
// summary of its job, or a null job when the posting is gone.
func (s *DashboardService) JobSeeker(userID string) (dtos.JobSeekerDashboard, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return dtos.JobSeekerDashboard{}, err
	}

	apps := s.Applications.ListByApplicant(userID)
	entries := make([]dtos.ApplicationWithJob, 0, len(apps))
	for _, app := range apps {
		entry := dtos.ApplicationWithJob{Application: app}
		if job, err := s.Jobs.Get(app.JobID); err == nil {
			entry.Job = &dtos.JobSummary{
				ID:       job.ID,
				Title:    job.Title,
				Company:  job.Company,
				Location: job.Location,
			}
		}
		entries = append(entries, entry)
	}

	return dtos.JobSeekerDashboard{
		User:            summarize(user),
		NumApplications: len(entries),
		Applications:    entries,
	}, nil
}

// Employer builds the employer's view: every posting with its
// application count and per-status breakdown.
func (s *DashboardService) Employer(userID string) (dtos.EmployerDashboard, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return dtos.EmployerDashboard{}, err
	}

	jobs := s.Jobs.ListByEmployer(userID)
	entries := make([]dtos.JobWithStats, 0, len(jobs))
	total := 0
	for _, job := range jobs {
		apps := s.Applications.ListByJob(job.ID)
		counts := make(map[models.ApplicationStatus]int)
		for _, app := range apps {
			counts[app.Status]++
		}
		total += len(apps)
		entries = append(entries, dtos.JobWithStats{
			Job:             job,
			NumApplications: len(apps),
			StatusCounts:    counts,
		})
	}

	return dtos.EmployerDashboard{
		User:            summarize(user),
		NumJobs:         len(entries),
		NumApplications: total,
		Jobs:            entries,
	}, nil
}

func summarize(u models.User) dtos.UserSummary {
	return dtos.UserSummary{Email: u.Email, Name: u.Name, Role: u.Role}
}
