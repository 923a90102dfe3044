package api

import (
	"encoding/json"
	"net/http"
	"time"

	"fileops-orchestrator/config"
	"fileops-orchestrator/errors"
	"fileops-orchestrator/logger"
	handlerRegistry "fileops-orchestrator/tasks/registry"
)

var startTime = time.Now()

// HealthResponse provides detailed health information
type HealthResponse struct {
	Status          string   `json:"status"`
	Timestamp       string   `json:"timestamp"`
	Uptime          string   `json:"uptime"`
	RegisteredTasks []string `json:"registered_tasks"`
	Version         string   `json:"version,omitempty"`
}

// NewHealthHandler returns a health check handler
func NewHealthHandler(cfg *config.Config, registry *handlerRegistry.HandlerRegistry, lg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		uptime := time.Since(startTime)
		response := HealthResponse{
			Status:          "healthy",
			Timestamp:       time.Now().UTC().Format(time.RFC3339),
			RegisteredTasks: registry.GetRegisteredTypes(),
			Uptime:          uptime.String(),
			Version:         cfg.Version,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			respondWithError(w, errors.NewInternalError("failed to encode response"), lg)
		}
	}
}
