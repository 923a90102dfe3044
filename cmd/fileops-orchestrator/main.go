package main

import (
	"context"
	"log"

	"fileops-orchestrator/api/server"
	"fileops-orchestrator/config"
	"fileops-orchestrator/logger"
	taskHandlers "fileops-orchestrator/tasks/handlers"
	"fileops-orchestrator/tasks/orchestrator"
	"fileops-orchestrator/tasks/orchestrator/execution"
	"fileops-orchestrator/tasks/queue"
	handlerRegistry "fileops-orchestrator/tasks/registry"
	"fileops-orchestrator/tasks/runners"
	"fileops-orchestrator/tasks/store"
	"fileops-orchestrator/tasks/workers"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	lg := logger.New(cfg.LogLevel, nil)

	lg.Info("starting fileops orchestrator", map[string]any{
		"version":   cfg.Version,
		"port":      cfg.ServerPort,
		"log_level": cfg.LogLevel,
		"async":     cfg.Async,
	})

	// Wire up business logic dependencies
	registry := createHandlerRegistry(lg)
	taskStore := store.NewMemoryTaskStore()
	stateManager := execution.NewDefaultStateManager(taskStore, lg)
	resultHandler := execution.NewDefaultResultHandler()

	var workflow execution.ExecutionWorkflow
	var pool *workers.WorkerPool

	if cfg.Async {
		taskQueue, err := queue.NewRedisTaskQueue(cfg.RedisURL, cfg.QueueName)
		if err != nil {
			log.Fatalf("failed to connect to task queue: %v", err)
		}
		defer taskQueue.Close()

		runner := runners.NewAsynchronousRunner(taskQueue, registry)
		workflow = execution.NewAsyncExecutionWorkflow(runner, stateManager, resultHandler, lg)

		pool = workers.NewWorkerPool(cfg.WorkerCount, taskQueue, stateManager, registry, lg)
		pool.SetShutdownTimeout(cfg.ShutdownTimeout)
		pool.Start(context.Background())
		defer pool.Stop()
	} else {
		runner := runners.NewSynchronousRunner(registry)
		workflow = execution.NewDefaultExecutionWorkflow(runner, stateManager, resultHandler, lg)
	}

	orch := orchestrator.NewOrchestrator(taskStore, workflow, lg)

	srv := server.New(orch, registry, cfg, lg)
	if err := srv.Start(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// createHandlerRegistry sets up all task handlers
func createHandlerRegistry(lg *logger.Logger) *handlerRegistry.HandlerRegistry {
	registry := handlerRegistry.NewRegistry()
	registry.Register("move", taskHandlers.NewMoveHandler(lg))
	registry.Register("copy", taskHandlers.NewCopyHandler(lg))
	registry.Register("remove", taskHandlers.NewRemoveHandler(lg))

	lg.Info("registered task handlers", map[string]any{
		"count": len(registry.GetRegisteredTypes()),
		"types": registry.GetRegisteredTypes(),
	})

	return registry
}
