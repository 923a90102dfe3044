package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"fileops-orchestrator/errors"
	"fileops-orchestrator/logger"
	"fileops-orchestrator/tasks/orchestrator"
)

const (
	maxBodySize    = 1024 * 1024 // 1 MB
	maxPayloadSize = 1024 * 100  // 100 KB
	maxTypeLen     = 50
)

// ErrorResponse defines the JSON structure for error responses
type ErrorResponse struct {
	Error   string         `json:"error"`
	Type    string         `json:"type,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// submitRequest defines the expected payload for a Task.
type submitRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SubmitResponse defines the JSON response returned after executing a Task.
type SubmitResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
	Result string `json:"result"`
}

// NewSubmitHandler returns an HTTP handler that processes task submissions.
//
// The orchestrator owns task routing, lifecycle management and logging;
// this handler validates the request envelope and reports the outcome.
func NewSubmitHandler(orch orchestrator.Orchestrator, lg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondWithError(w, errors.NewInvalidInputError("method not allowed"), lg)
			return
		}

		// Limit request body size - this will cause Decode to fail if exceeded
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if strings.Contains(err.Error(), "http: request body too large") {
				respondWithError(w, errors.NewInvalidInputError("request body too large", map[string]any{
					"max_size_bytes": maxBodySize,
				}), lg)
				return
			}

			respondWithError(w, errors.NewInvalidInputError("invalid JSON payload", map[string]any{
				"error": err.Error(),
			}), lg)
			return
		}

		if req.Type == "" {
			respondWithError(w, errors.NewInvalidInputError("task type is required"), lg)
			return
		}

		if len(req.Type) > maxTypeLen {
			respondWithError(w, errors.NewInvalidInputError("task type too long", map[string]any{
				"max_length":    maxTypeLen,
				"actual_length": len(req.Type),
			}), lg)
			return
		}

		if len(req.Payload) > maxPayloadSize {
			respondWithError(w, errors.NewInvalidInputError("task payload too large", map[string]any{
				"max_size_bytes":    maxPayloadSize,
				"actual_size_bytes": len(req.Payload),
			}), lg)
			return
		}

		task, err := orch.SubmitTask(r.Context(), req.Type, req.Payload)
		if err != nil {
			if taskErr, ok := errors.IsTaskError(err); ok {
				respondWithError(w, taskErr, lg)
			} else {
				respondWithError(w, errors.NewInternalError(err.Error()), lg)
			}
			return
		}

		resp := SubmitResponse{
			TaskID: task.ID,
			Status: task.Status.String(),
			Result: task.Result,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			respondWithError(w, errors.NewInternalError("failed to encode response"), lg)
		}
	}
}

// respondWithError sends a structured error response
func respondWithError(w http.ResponseWriter, taskErr *errors.TaskError, lg *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(taskErr.Code)

	errorResp := ErrorResponse{
		Error:   taskErr.Message,
		Type:    string(taskErr.Type),
		Details: taskErr.Details,
	}

	lg.Error("HTTP error response", map[string]any{
		"error_type":    string(taskErr.Type),
		"error_message": taskErr.Message,
		"status_code":   taskErr.Code,
		"error_details": taskErr.Details,
	})

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		// Headers and possibly part of the body are already written,
		// so there is no graceful recovery; the connection may be broken.
		lg.Error("failed to encode error response", map[string]any{
			"error": err.Error(),
		})
	}
}
