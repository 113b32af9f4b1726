package cli

import (
	"bytes"
	"context"
	"testing"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/services"
	"todo-list/internal/validation"
)

// memoryFactory builds a fresh in-memory container per run
func memoryFactory(ctx context.Context, cfg *config.Config) (*services.ServiceContainer, error) {
	taskService := services.NewMemoryTaskService(
		domain.NewTaskList(),
		services.WithStrict(cfg.Application.Strict),
		services.WithTaskValidator(validation.NewTaskValidatorWithConfig(cfg)),
	)
	return services.NewServiceContainer(taskService), nil
}

// newTestApp returns an App on an empty list and the buffer it writes to
func newTestApp(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		cfg = config.NewConfig()
	}
	container, err := memoryFactory(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to create services: %v", err)
	}
	t.Cleanup(func() { container.Close() })

	var out bytes.Buffer
	return NewApp(container, cfg, &out), &out
}
