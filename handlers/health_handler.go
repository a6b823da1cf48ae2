package handlers

import (
	"net/http"
	"time"

	"github.com/opslab/lbaas-control-plane/utils"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// WelcomeResponse represents the root endpoint response
type WelcomeResponse struct {
	Message string `json:"message"`
}

// HandleRoot handles GET /
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteOK(w, WelcomeResponse{Message: "Welcome to the LBaaS API"})
}

// HandleHealth handles GET /health.
// Basic liveness check, always 200 while the process is serving.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteOK(w, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
