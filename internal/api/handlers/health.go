package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLiveness handles GET /health/live — Kubernetes liveness probe.
func (s *Server) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadiness handles GET /health/ready — Kubernetes readiness probe.
// Ready means the cluster API answers; without it no request can succeed.
func (s *Server) GetReadiness(c *gin.Context) {
	checks := make(map[string]string)
	status := "ok"
	httpStatus := http.StatusOK

	if err := s.accessor.Ping(c.Request.Context()); err != nil {
		checks["cluster"] = "error"
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["cluster"] = "ok"
	}

	c.JSON(httpStatus, gin.H{
		"status": status,
		"checks": checks,
	})
}
