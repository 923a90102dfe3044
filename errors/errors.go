package errors

import (
	"fmt"
	"net/http"
)

// TaskErrorType categorizes different kinds of task failures
type TaskErrorType string

const (
	// InvalidInputError is raised before any file-system mutation,
	// e.g. when a required path parameter resolves to empty.
	InvalidInputError TaskErrorType = "invalid_input"
	// IOFailureError wraps errors surfaced by the underlying file-system
	// primitives (permission denied, missing path, device errors).
	IOFailureError TaskErrorType = "io_failure"
	NotFoundError  TaskErrorType = "not_found"
	InternalError  TaskErrorType = "internal"
)

// TaskError provides structured error information with HTTP status suggestions
type TaskError struct {
	Type    TaskErrorType  `json:"type"`
	Message string         `json:"message"`
	Code    int            `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Constructor functions for common error types
func NewInvalidInputError(message string, details ...map[string]any) *TaskError {
	var d map[string]any
	if len(details) > 0 {
		d = details[0]
	}
	return &TaskError{
		Type:    InvalidInputError,
		Message: message,
		Code:    http.StatusBadRequest,
		Details: d,
	}
}

func NewIOFailureError(message string, details ...map[string]any) *TaskError {
	var d map[string]any
	if len(details) > 0 {
		d = details[0]
	}
	return &TaskError{
		Type:    IOFailureError,
		Message: message,
		Code:    http.StatusUnprocessableEntity,
		Details: d,
	}
}

func NewNotFoundError(message string) *TaskError {
	return &TaskError{
		Type:    NotFoundError,
		Message: message,
		Code:    http.StatusNotFound,
	}
}

func NewInternalError(message string) *TaskError {
	return &TaskError{
		Type:    InternalError,
		Message: message,
		Code:    http.StatusInternalServerError,
	}
}

// IsTaskError checks if an error is a TaskError and returns it
func IsTaskError(err error) (*TaskError, bool) {
	if taskErr, ok := err.(*TaskError); ok {
		return taskErr, true
	}
	return nil, false
}
