//go:build integration

package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"fileops-orchestrator/tasks"
	taskContext "fileops-orchestrator/tasks/context"
)

func createTestExecutionContext(taskType string, payload any) *taskContext.ExecutionContext {
	payloadBytes, _ := json.Marshal(payload)
	task := tasks.NewTask(taskType, json.RawMessage(payloadBytes))
	return taskContext.NewExecutionContext(task)
}

func testQueueBasicOperations(t *testing.T, queue TaskQueue) {
	ctx := context.Background()

	originalExecCtx := createTestExecutionContext("move", map[string]string{
		"source_path": "/tmp/in/report.txt",
		"target_path": "/tmp/out",
	})

	err := queue.Enqueue(ctx, originalExecCtx)
	assert.NilError(t, err, "Failed to enqueue task")

	depth, err := queue.GetQueueDepth(ctx)
	assert.NilError(t, err, "Failed to get queue depth")
	assert.Equal(t, int64(1), depth, "Queue depth should be 1 after enqueue")

	dequeuedExecCtx, err := queue.Dequeue(ctx)
	assert.NilError(t, err, "Failed to dequeue task")
	assert.Assert(t, dequeuedExecCtx != nil, "Dequeued execution context should not be nil")

	assert.Equal(t, originalExecCtx.Task.Type, dequeuedExecCtx.Task.Type)
	assert.Equal(t, string(originalExecCtx.Task.Payload), string(dequeuedExecCtx.Task.Payload))
	assert.Equal(t, originalExecCtx.Task.ID, dequeuedExecCtx.Task.ID)

	depth, err = queue.GetQueueDepth(ctx)
	assert.NilError(t, err, "Failed to get queue depth after dequeue")
	assert.Equal(t, int64(0), depth, "Queue should be empty after dequeue")
}

func testQueueFIFOOrdering(t *testing.T, queue TaskQueue) {
	ctx := context.Background()

	execCtxs := []*taskContext.ExecutionContext{
		createTestExecutionContext("move", map[string]string{"source_path": "/tmp/a"}),
		createTestExecutionContext("copy", map[string]string{"source_path": "/tmp/b"}),
		createTestExecutionContext("remove", map[string]string{"remove_path": "/tmp/c"}),
	}

	for _, execCtx := range execCtxs {
		err := queue.Enqueue(ctx, execCtx)
		assert.NilError(t, err, "Failed to enqueue task")
	}

	depth, err := queue.GetQueueDepth(ctx)
	assert.NilError(t, err, "Failed to get queue depth")
	assert.Equal(t, int64(3), depth, "Queue depth should be 3")

	for i, expected := range execCtxs {
		dequeued, err := queue.Dequeue(ctx)
		assert.NilError(t, err, "Failed to dequeue task %d", i)
		assert.Equal(t, expected.Task.Type, dequeued.Task.Type, "Task %d type mismatch", i)
		assert.Equal(t, string(expected.Task.Payload), string(dequeued.Task.Payload), "Task %d payload mismatch", i)
	}

	depth, err = queue.GetQueueDepth(ctx)
	assert.NilError(t, err, "Failed to get final queue depth")
	assert.Equal(t, int64(0), depth, "Queue should be empty")
}

func testQueueConcurrency(t *testing.T, queue TaskQueue) {
	ctx := context.Background()
	numTasks := 10

	enqueueDone := make(chan struct{})
	go func() {
		defer close(enqueueDone)
		for i := 0; i < numTasks; i++ {
			execCtx := createTestExecutionContext("remove", map[string]int{"id": i})
			err := queue.Enqueue(ctx, execCtx)
			assert.NilError(t, err, "Failed to enqueue concurrent task %d", i)
		}
	}()

	<-enqueueDone

	depth, err := queue.GetQueueDepth(ctx)
	assert.NilError(t, err, "Failed to get queue depth")
	assert.Equal(t, int64(numTasks), depth, "All tasks should be enqueued")

	results := make(chan *taskContext.ExecutionContext, numTasks)
	errs := make(chan error, numTasks)

	for i := 0; i < numTasks; i++ {
		go func() {
			execCtx, err := queue.Dequeue(ctx)
			if err != nil {
				errs <- err
			} else {
				results <- execCtx
			}
		}()
	}

	var dequeued []*taskContext.ExecutionContext
	for i := 0; i < numTasks; i++ {
		select {
		case execCtx := <-results:
			dequeued = append(dequeued, execCtx)
		case err := <-errs:
			t.Fatalf("Error during concurrent dequeue: %v", err)
		case <-time.After(1 * time.Second):
			t.Fatalf("Timeout waiting for concurrent dequeue %d", i)
		}
	}

	assert.Equal(t, numTasks, len(dequeued), "Should have dequeued all tasks")

	depth, err = queue.GetQueueDepth(ctx)
	assert.NilError(t, err, "Failed to get final queue depth")
	assert.Equal(t, int64(0), depth, "Queue should be empty after concurrent operations")
}
