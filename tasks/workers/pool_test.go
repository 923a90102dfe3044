package workers

import (
	"context"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"fileops-orchestrator/logger"
	"fileops-orchestrator/tasks"
	"fileops-orchestrator/tasks/orchestrator/execution"
	handlerRegistry "fileops-orchestrator/tasks/registry"
	"fileops-orchestrator/tasks/store"
)

func newPoolFixture(t *testing.T, workerCount int) (*WorkerPool, *chanQueue, *store.MemoryTaskStore) {
	t.Helper()
	lg := logger.New("ERROR", nil)

	registry := handlerRegistry.NewRegistry()
	registry.Register("move", &stubHandler{result: "/tmp/out"})

	s := store.NewMemoryTaskStore()
	sm := execution.NewDefaultStateManager(s, lg)
	queue := newChanQueue(32)

	pool := NewWorkerPool(workerCount, queue, sm, registry, lg)
	pool.SetShutdownTimeout(2 * time.Second)
	return pool, queue, s
}

func TestWorkerPool_GetWorkerCount(t *testing.T) {
	pool, _, _ := newPoolFixture(t, 3)
	assert.Equal(t, 3, pool.GetWorkerCount())
}

func TestWorkerPool_ProcessesMultipleTasks(t *testing.T) {
	pool, queue, s := newPoolFixture(t, 3)

	pool.Start(context.Background())
	defer pool.Stop()

	taskIDs := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		task := enqueueTask(t, queue, s, "move")
		taskIDs = append(taskIDs, task.ID)
	}

	for _, id := range taskIDs {
		done := waitForStatus(t, s, id, tasks.StatusDone)
		assert.Equal(t, "/tmp/out", done.Result)
	}
}

func TestWorkerPool_StopCompletes(t *testing.T) {
	pool, _, _ := newPoolFixture(t, 2)

	pool.Start(context.Background())

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pool did not stop in time")
	}
}
