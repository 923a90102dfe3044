//go:build integration

package queue

import (
	"context"
	"encoding/json"
	"testing"

	"gotest.tools/v3/assert"

	"fileops-orchestrator/tasks"
	taskContext "fileops-orchestrator/tasks/context"
)

func TestRedisTaskQueue_NewRedisTaskQueue(t *testing.T) {
	queue, cleanup := setupRedisTestcontainer(t)
	defer cleanup()

	assert.Assert(t, queue != nil)
	assert.Assert(t, len(queue.queueName) > 0)
	assert.Assert(t, queue.client != nil)
}

func TestRedisTaskQueue_BasicOperations(t *testing.T) {
	queue, cleanup := setupRedisTestcontainer(t)
	defer cleanup()

	testQueueBasicOperations(t, queue)
}

func TestRedisTaskQueue_FIFOOrdering(t *testing.T) {
	queue, cleanup := setupRedisTestcontainer(t)
	defer cleanup()

	testQueueFIFOOrdering(t, queue)
}

func TestRedisTaskQueue_Concurrency(t *testing.T) {
	queue, cleanup := setupRedisTestcontainer(t)
	defer cleanup()

	testQueueConcurrency(t, queue)
}

func TestRedisTaskQueue_ConnectionErrors(t *testing.T) {
	_, err := NewRedisTaskQueue("invalid://url", "test")
	assert.ErrorContains(t, err, "invalid Redis URL")

	_, err = NewRedisTaskQueue("redis://localhost:99999/1", "test")
	assert.ErrorContains(t, err, "failed to connect to Redis")
}

func TestRedisTaskQueue_InvalidData(t *testing.T) {
	queue, cleanup := setupRedisTestcontainer(t)
	defer cleanup()

	ctx := context.Background()

	err := queue.client.LPush(ctx, queue.queueName, "invalid-json").Err()
	assert.NilError(t, err)

	_, err = queue.Dequeue(ctx)
	assert.ErrorContains(t, err, "failed to unmarshal task")
}

func TestRedisTaskQueue_Close(t *testing.T) {
	queue, cleanup := setupRedisTestcontainer(t)
	defer cleanup()

	err := queue.Close()
	assert.NilError(t, err)

	ctx := context.Background()
	execCtx := createTestExecutionContext("move", map[string]string{})

	err = queue.Enqueue(ctx, execCtx)
	assert.ErrorContains(t, err, "client is closed")
}

func TestRedisTaskQueue_MarshalError(t *testing.T) {
	queue, cleanup := setupRedisTestcontainer(t)
	defer cleanup()

	ctx := context.Background()

	// json.RawMessage must hold valid JSON or Marshal fails
	task := &tasks.Task{
		ID:      "test-id",
		Type:    "move",
		Payload: json.RawMessage(string([]byte{0xff, 0xfe, 0xfd})),
	}
	execCtx := &taskContext.ExecutionContext{Task: task}

	err := queue.Enqueue(ctx, execCtx)
	assert.ErrorContains(t, err, "failed to marshal task")
}
