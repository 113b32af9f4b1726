package main

import (
	"context"
	"fmt"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/logging"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/services"
	"todo-list/internal/validation"
)

// BackendFactory creates task services for the configured store backend
type BackendFactory struct{}

// NewBackendFactory creates a new backend factory
func NewBackendFactory() *BackendFactory {
	return &BackendFactory{}
}

// Create builds a service container on a fresh, empty store
func (bf *BackendFactory) Create(ctx context.Context, cfg *config.Config) (*services.ServiceContainer, error) {
	opts := []services.Option{
		services.WithStrict(cfg.Application.Strict),
		services.WithQueryTimeout(cfg.Store.QueryTimeout),
		services.WithTaskValidator(validation.NewTaskValidatorWithConfig(cfg)),
	}

	logging.Debugf("using %s task store\n", cfg.Store.Backend)
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return bf.createMemory(opts)
	case config.BackendSQLite:
		return bf.createSQLite(ctx, opts)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// createMemory keeps tasks in a domain.TaskList
func (bf *BackendFactory) createMemory(opts []services.Option) (*services.ServiceContainer, error) {
	taskService := services.NewMemoryTaskService(domain.NewTaskList(), opts...)
	return services.NewServiceContainer(taskService), nil
}

// createSQLite keeps tasks in a private in-memory SQLite database
func (bf *BackendFactory) createSQLite(ctx context.Context, opts []services.Option) (*services.ServiceContainer, error) {
	repo, err := sqlite.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
	}

	taskService := services.NewSQLiteTaskService(repo, opts...)
	return services.NewServiceContainer(taskService), nil
}
