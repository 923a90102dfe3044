package runners

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"

	apperrors "fileops-orchestrator/errors"
	"fileops-orchestrator/tasks"
	taskContext "fileops-orchestrator/tasks/context"
	handlerRegistry "fileops-orchestrator/tasks/registry"
)

// fakeQueue is an in-memory TaskQueue test double.
type fakeQueue struct {
	items      []*taskContext.ExecutionContext
	enqueueErr error
}

func (q *fakeQueue) Enqueue(ctx context.Context, execCtx *taskContext.ExecutionContext) error {
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	q.items = append(q.items, execCtx)
	return nil
}

func (q *fakeQueue) Dequeue(ctx context.Context) (*taskContext.ExecutionContext, error) {
	if len(q.items) == 0 {
		return nil, fmt.Errorf("queue is empty")
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item, nil
}

func (q *fakeQueue) GetQueueDepth(ctx context.Context) (int64, error) {
	return int64(len(q.items)), nil
}

func (q *fakeQueue) Close() error { return nil }

func TestAsynchronousRunner_Run(t *testing.T) {
	t.Run("enqueues task for registered type", func(t *testing.T) {
		reg := handlerRegistry.NewRegistry()
		reg.Register("copy", &stubHandler{})
		queue := &fakeQueue{}

		runner := NewAsynchronousRunner(queue, reg)
		task := tasks.NewTask("copy", json.RawMessage(`{"source_path":"/a","target_path":"/b"}`))

		err := runner.Run(context.Background(), task)
		require.NoError(t, err)

		depth, err := queue.GetQueueDepth(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), depth)

		// The task is queued, not executed
		assert.Equal(t, tasks.StatusSubmitted, task.Status)
	})

	t.Run("rejects unknown task type before queuing", func(t *testing.T) {
		queue := &fakeQueue{}
		runner := NewAsynchronousRunner(queue, handlerRegistry.NewRegistry())
		task := tasks.NewTask("unknown", json.RawMessage(`{}`))

		err := runner.Run(context.Background(), task)
		require.Error(t, err)

		taskErr, ok := apperrors.IsTaskError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.NotFoundError, taskErr.Type)
		assert.Equal(t, 0, len(queue.items))
	})

	t.Run("wraps enqueue failures", func(t *testing.T) {
		reg := handlerRegistry.NewRegistry()
		reg.Register("remove", &stubHandler{})
		queue := &fakeQueue{enqueueErr: errors.New("connection refused")}

		runner := NewAsynchronousRunner(queue, reg)
		task := tasks.NewTask("remove", json.RawMessage(`{}`))

		err := runner.Run(context.Background(), task)
		require.Error(t, err)

		taskErr, ok := apperrors.IsTaskError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.InternalError, taskErr.Type)
	})
}
