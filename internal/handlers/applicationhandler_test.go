package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
)

func TestApplyAndListMine(t *testing.T) {
	app := setupTestRouter()
	employer := app.registerEmployer(t, "hr@acme.com")
	seeker := app.registerJobSeeker(t, "sam@example.com")
	jobID := app.postJob(t, employer, gin.H{"title": "Backend Engineer", "description": "Go", "location": "Remote"})

	w := app.do("POST", "/applications/", seeker, gin.H{"job_id": jobID, "cover_letter": "Please hire me"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var filed models.Application
	json.Unmarshal(w.Body.Bytes(), &filed)
	if filed.Status != models.StatusSubmitted {
		t.Errorf("Expected submitted, got %s", filed.Status)
	}

	w = app.do("GET", "/applications/my", seeker, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var mine []models.Application
	json.Unmarshal(w.Body.Bytes(), &mine)
	if len(mine) != 1 || mine[0].ID != filed.ID {
		t.Errorf("Expected my one application, got %v", mine)
	}
}

func TestApplyTwiceConflicts(t *testing.T) {
	app := setupTestRouter()
	employer := app.registerEmployer(t, "hr@acme.com")
	seeker := app.registerJobSeeker(t, "sam@example.com")
	jobID := app.postJob(t, employer, gin.H{"title": "T", "description": "D", "location": "Remote"})

	if w := app.do("POST", "/applications/", seeker, gin.H{"job_id": jobID}); w.Code != http.StatusCreated {
		t.Fatalf("first apply failed with %d", w.Code)
	}

	w := app.do("POST", "/applications/", seeker, gin.H{"job_id": jobID})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}
}

func TestApplyUnknownJob(t *testing.T) {
	app := setupTestRouter()
	seeker := app.registerJobSeeker(t, "sam@example.com")

	w := app.do("POST", "/applications/", seeker, gin.H{"job_id": "missing"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestApplyRequiresJobSeeker(t *testing.T) {
	app := setupTestRouter()
	employer := app.registerEmployer(t, "hr@acme.com")
	jobID := app.postJob(t, employer, gin.H{"title": "T", "description": "D", "location": "Remote"})

	w := app.do("POST", "/applications/", employer, gin.H{"job_id": jobID})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for employer, got %d", w.Code)
	}
}

func TestListForJobOwnership(t *testing.T) {
	app := setupTestRouter()
	owner := app.registerEmployer(t, "hr@acme.com")
	other := app.registerEmployer(t, "hr@other.com")
	seeker := app.registerJobSeeker(t, "sam@example.com")
	jobID := app.postJob(t, owner, gin.H{"title": "T", "description": "D", "location": "Remote"})
	app.do("POST", "/applications/", seeker, gin.H{"job_id": jobID})

	w := app.do("GET", "/applications/for-job/"+jobID, owner, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var apps []models.Application
	json.Unmarshal(w.Body.Bytes(), &apps)
	if len(apps) != 1 {
		t.Errorf("Expected 1 application, got %d", len(apps))
	}

	w = app.do("GET", "/applications/for-job/"+jobID, other, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for the other employer, got %d", w.Code)
	}
}

func TestReviewApplication(t *testing.T) {
	app := setupTestRouter()
	owner := app.registerEmployer(t, "hr@acme.com")
	seeker := app.registerJobSeeker(t, "sam@example.com")
	jobID := app.postJob(t, owner, gin.H{"title": "T", "description": "D", "location": "Remote"})

	w := app.do("POST", "/applications/", seeker, gin.H{"job_id": jobID})
	var filed models.Application
	json.Unmarshal(w.Body.Bytes(), &filed)

	w = app.do("PUT", "/applications/"+filed.ID+"/review", owner, gin.H{"status": "accepted"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var reviewed models.Application
	json.Unmarshal(w.Body.Bytes(), &reviewed)
	if reviewed.Status != models.StatusAccepted {
		t.Errorf("Expected accepted, got %s", reviewed.Status)
	}

	w = app.do("PUT", "/applications/"+filed.ID+"/review", owner, gin.H{"status": "hired"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown status, got %d", w.Code)
	}

	w = app.do("PUT", "/applications/missing/review", owner, gin.H{"status": "accepted"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
