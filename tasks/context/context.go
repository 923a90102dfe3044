package context

import (
	"time"

	"fileops-orchestrator/tasks"
)

// ExecutionContext tracks execution state and timing for observability and debugging.
// This enables detailed monitoring and future execution strategies
// like retries or timeouts that need execution history.
type ExecutionContext struct {
	Task      *tasks.Task `json:"task"`
	Error     error       `json:"-"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
}

// NewExecutionContext initializes tracking for a new execution attempt.
func NewExecutionContext(task *tasks.Task) *ExecutionContext {
	return &ExecutionContext{
		Task:      task,
		StartTime: time.Now(),
	}
}

// SetError captures failure details for consistent error handling across strategies.
func (e *ExecutionContext) SetError(err error) {
	e.Error = err
	e.EndTime = time.Now()
}

// SetSuccess marks successful completion for monitoring and metrics collection.
func (e *ExecutionContext) SetSuccess() {
	e.EndTime = time.Now()
}

// Duration returns how long the execution took, or zero if still running.
func (e *ExecutionContext) Duration() time.Duration {
	if e.EndTime.IsZero() {
		return 0
	}
	return e.EndTime.Sub(e.StartTime)
}
