package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/auth"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/dtos"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/services"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/store"
)

// testApp bundles a fully wired router with the stores behind it.
type testApp struct {
	router *gin.Engine
	users  *store.UserStore
	jobs   *store.JobStore
	apps   *store.ApplicationStore
}

// setupTestRouter wires the complete route table the way cmd/api does.
func setupTestRouter() *testApp {
	gin.SetMode(gin.TestMode)

	userStore := store.NewUserStore()
	jobStore := store.NewJobStore()
	applicationStore := store.NewApplicationStore()

	tokens := auth.NewTokenService("test-secret", time.Hour)
	userService := services.NewUserService(userStore)
	jobService := services.NewJobService(jobStore, userStore)
	applicationService := services.NewApplicationService(applicationStore, jobStore)
	dashboardService := services.NewDashboardService(userStore, jobStore, applicationStore)

	authHandler := NewAuthHandler(userService, tokens)
	jobHandler := NewJobHandler(jobService)
	applicationHandler := NewApplicationHandler(applicationService)
	dashboardHandler := NewDashboardHandler(dashboardService)
	gate := auth.NewMiddleware(tokens, userStore)

	r := gin.New()
	r.GET("/", HealthCheck)

	authRoutes := r.Group("/auth")
	authRoutes.POST("/register/jobseeker", authHandler.RegisterJobSeeker)
	authRoutes.POST("/register/employer", authHandler.RegisterEmployer)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/token", authHandler.Token)

	jobs := r.Group("/jobs")
	jobs.GET("/", jobHandler.List)
	jobs.GET("/:id", jobHandler.Get)
	jobs.POST("/", gate.Authenticate(), gate.RequireRole(models.RoleEmployer), jobHandler.Create)
	jobs.PUT("/:id", gate.Authenticate(), gate.RequireRole(models.RoleEmployer), jobHandler.Update)
	jobs.DELETE("/:id", gate.Authenticate(), gate.RequireRole(models.RoleEmployer), jobHandler.Delete)

	applications := r.Group("/applications", gate.Authenticate())
	applications.POST("/", gate.RequireRole(models.RoleJobSeeker), applicationHandler.Apply)
	applications.GET("/my", gate.RequireRole(models.RoleJobSeeker), applicationHandler.ListMine)
	applications.GET("/for-job/:job_id", gate.RequireRole(models.RoleEmployer), applicationHandler.ListForJob)
	applications.PUT("/:id/review", gate.RequireRole(models.RoleEmployer), applicationHandler.Review)

	dashboard := r.Group("/dashboard", gate.Authenticate())
	dashboard.GET("/jobseeker", gate.RequireRole(models.RoleJobSeeker), dashboardHandler.JobSeeker)
	dashboard.GET("/employer", gate.RequireRole(models.RoleEmployer), dashboardHandler.Employer)

	return &testApp{router: r, users: userStore, jobs: jobStore, apps: applicationStore}
}

// do sends a request, marshaling body to JSON when non-nil and
// attaching token as a bearer header when non-empty.
func (a *testApp) do(method, path, token string, body any) *httptest.ResponseRecorder {
	buf := &bytes.Buffer{}
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewBuffer(b)
	}

	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// registerEmployer creates an employer account through the API and
// returns a bearer token for it.
func (a *testApp) registerEmployer(t *testing.T, email string) string {
	t.Helper()
	w := a.do("POST", "/auth/register/employer", "", gin.H{
		"email":        email,
		"password":     "hunter22",
		"name":         "Acme HR",
		"company_name": "Acme Corp",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register employer failed with %d: %s", w.Code, w.Body.String())
	}
	return a.login(t, email)
}

// registerJobSeeker creates a seeker account through the API and
// returns a bearer token for it.
func (a *testApp) registerJobSeeker(t *testing.T, email string) string {
	t.Helper()
	w := a.do("POST", "/auth/register/jobseeker", "", gin.H{
		"email":    email,
		"password": "hunter22",
		"name":     "Sam Seeker",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register jobseeker failed with %d: %s", w.Code, w.Body.String())
	}
	return a.login(t, email)
}

func (a *testApp) login(t *testing.T, email string) string {
	t.Helper()
	w := a.do("POST", "/auth/login", "", gin.H{"email": email, "password": "hunter22"})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", w.Code, w.Body.String())
	}
	var res dtos.TokenResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	return res.AccessToken
}

// postJob creates a posting through the API and returns its id.
func (a *testApp) postJob(t *testing.T, token string, body gin.H) string {
	t.Helper()
	w := a.do("POST", "/jobs/", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("post job failed with %d: %s", w.Code, w.Body.String())
	}
	var job models.Job
	json.Unmarshal(w.Body.Bytes(), &job)
	return job.ID
}
