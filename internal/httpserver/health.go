package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"time-vault-relay/config"
	"time-vault-relay/pkg/response"
)

// Health response constants (single source for service identity).
const (
	ServiceName = "time-vault-relay"

	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status      string            `json:"status"`
	Timestamp   response.DateTime `json:"timestamp"`
	Environment string            `json:"environment"`
	Version     string            `json:"version"`
	Region      string            `json:"region"`
	Config      config.Presence   `json:"config"`
}

// healthCheck reports whether every required setting is present.
// @Summary Health Check
// @Description Reports liveness and which required settings are configured. 503 when any is missing.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "All settings present"
// @Failure 503 {object} HealthResponse "A required setting is missing"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	presence := srv.telegramConfig.Presence()

	status, code := StatusHealthy, http.StatusOK
	if !presence.Healthy() {
		status, code = StatusUnhealthy, http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:      status,
		Timestamp:   response.DateTime(time.Now()),
		Environment: srv.environment,
		Version:     srv.version,
		Region:      srv.region,
		Config:      presence,
	})
}

// readyCheck handles readiness check, returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": srv.version,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"version": srv.version,
		"service": ServiceName,
	})
}
