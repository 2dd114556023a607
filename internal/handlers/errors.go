package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/services"
	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/store"
)

// errorJSON writes a service or store error as the portal's standard
// {"error": "..."} body with the matching HTTP status.
func errorJSON(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrJobNotFound),
		errors.Is(err, store.ErrApplicationNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrEmailTaken),
		errors.Is(err, store.ErrAlreadyApplied):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotJobOwner):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
