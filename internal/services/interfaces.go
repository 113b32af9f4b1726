package services

import (
	"context"

	"todo-list/internal/domain"
)

// StatusSummary counts tasks per status
type StatusSummary struct {
	ToDo       int `json:"todo" yaml:"todo"`
	InProgress int `json:"in_progress" yaml:"in_progress"`
	Done       int `json:"done" yaml:"done"`
	Total      int `json:"total" yaml:"total"`
}

// SearchCriteria represents criteria for filtering the task list
type SearchCriteria struct {
	TextFilter string         `json:"text_filter,omitempty"`
	Status     *domain.Status `json:"status,omitempty"`
}

// TaskService exposes the task list operations behind a store backend.
//
// Lookups and transitions act on the first task with a matching name;
// RemoveTask removes every match. Transitions on a missing name report
// false without an error unless the service runs in strict mode, in which
// case they return a not_found AppError.
type TaskService interface {
	// Task list operations
	AddTask(ctx context.Context, name string) (*domain.Task, error)
	RemoveTask(ctx context.Context, name string) (int, error)
	GetTask(ctx context.Context, name string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CountTasks(ctx context.Context) (int, error)

	// Status transitions
	CompleteTask(ctx context.Context, name string) (bool, error)
	UncompleteTask(ctx context.Context, name string) (bool, error)
	StartProgress(ctx context.Context, name string) (bool, error)

	// Utility
	Close() error
}

// SearchService handles filtering of the task list
type SearchService interface {
	SearchTasks(ctx context.Context, criteria SearchCriteria) ([]domain.Task, error)
	FilterTasks(tasks []domain.Task, criteria SearchCriteria) []domain.Task
}

// ReportingService handles aggregate views of the task list
type ReportingService interface {
	GetStatusSummary(ctx context.Context) (*StatusSummary, error)
	Summarize(tasks []domain.Task) *StatusSummary
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService      TaskService
	SearchService    SearchService
	ReportingService ReportingService
}

// NewServiceContainer wires the search and reporting services around taskService
func NewServiceContainer(taskService TaskService) *ServiceContainer {
	return &ServiceContainer{
		TaskService:      taskService,
		SearchService:    NewSearchService(taskService),
		ReportingService: NewReportingService(taskService),
	}
}

// Close releases the underlying store
func (c *ServiceContainer) Close() error {
	return c.TaskService.Close()
}
