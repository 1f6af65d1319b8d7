// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    func() bool
	redisHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil redisHealthChecker reports Redis as disabled.
func NewHealthController(dbHealthChecker, redisHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		redisHealthChecker: redisHealthChecker,
	}
}

// Check handles GET /health requests.
// The status degrades to 503 when the database cannot be reached.
func (h *HealthController) Check(c *gin.Context) {
	status := http.StatusOK
	response := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Redis:     "disabled",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.dbHealthChecker == nil || !h.dbHealthChecker() {
		status = http.StatusServiceUnavailable
		response.Status = "degraded"
		response.Database = "disconnected"
	}

	if h.redisHealthChecker != nil {
		response.Redis = "connected"
		if !h.redisHealthChecker() {
			response.Redis = "disconnected"
		}
	}

	c.JSON(status, response)
}
