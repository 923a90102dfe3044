package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusSubmitted TaskStatus = "submitted"
	StatusRunning   TaskStatus = "running"
	StatusDone      TaskStatus = "done"
	StatusFailed    TaskStatus = "failed"
)

func (s TaskStatus) String() string {
	return string(s)
}

// IsFinal reports whether the status is terminal and can no longer change.
func (s TaskStatus) IsFinal() bool {
	return s == StatusDone || s == StatusFailed
}

// IsActive reports whether the task is currently being executed.
func (s TaskStatus) IsActive() bool {
	return s == StatusRunning
}

// canTransitionTo validates a status change against the task lifecycle:
// submitted -> running -> done|failed, plus submitted -> failed for
// tasks rejected before execution starts.
func (s TaskStatus) canTransitionTo(target TaskStatus) error {
	valid := map[TaskStatus][]TaskStatus{
		StatusSubmitted: {StatusRunning, StatusFailed},
		StatusRunning:   {StatusDone, StatusFailed},
		StatusDone:      {},
		StatusFailed:    {},
	}

	for _, allowed := range valid[s] {
		if target == allowed {
			return nil
		}
	}
	return fmt.Errorf("invalid transition from %s to %s", s, target)
}

// Task represents a single unit of work submitted to the orchestrator.
type Task struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	// For delayed decoding until we know task Type
	Payload json.RawMessage `json:"payload"`
	// Lifecycle of the task (Where is the task now?)
	Status TaskStatus `json:"status"`
	// Output of the task: business level outcome (What happened?)
	Result string `json:"result"`
}

// NewTask creates a task in the submitted state with a fresh ID.
func NewTask(taskType string, payload json.RawMessage) *Task {
	return &Task{
		ID:      uuid.New().String(),
		Type:    taskType,
		Payload: payload,
		Status:  StatusSubmitted,
		Result:  "",
	}
}

// SetStatus transitions the task to a new status, enforcing lifecycle rules.
func (t *Task) SetStatus(status TaskStatus) error {
	if err := t.Status.canTransitionTo(status); err != nil {
		return err
	}
	t.Status = status
	return nil
}
