package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is the GET / endpoint used by load balancers and
// uptime probes.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Healthy"})
}
