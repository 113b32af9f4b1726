package services

import (
	"context"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
)

// memoryTaskService implements TaskService directly on a domain.TaskList
type memoryTaskService struct {
	list *domain.TaskList
	opts options
}

// NewMemoryTaskService creates a TaskService backed by list
func NewMemoryTaskService(list *domain.TaskList, opts ...Option) TaskService {
	return &memoryTaskService{
		list: list,
		opts: newOptions(opts),
	}
}

// validateAndTrimTaskName validates and trims a task name read from input
func validateAndTrimTaskName(o options, name string) (string, error) {
	trimmedName, err := o.taskValidator.GetValidTaskName(name)
	if err != nil {
		return "", errors.NewValidationError("invalid task name", err)
	}
	return trimmedName, nil
}

// missing turns a transition miss into the configured outcome
func missing(o options, name string) (bool, error) {
	logging.Debugf("no task named %q\n", name)
	if o.strict {
		return false, errors.NewNotFoundError("task", name)
	}
	return false, nil
}

// AddTask appends a new ToDo task
func (s *memoryTaskService) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	trimmedName, err := validateAndTrimTaskName(s.opts, name)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(trimmedName)
	s.list.AddTask(task)
	logging.Debugf("added task %q (%d tasks)\n", trimmedName, s.list.Len())
	return &task, nil
}

// RemoveTask removes every task with the given name
func (s *memoryTaskService) RemoveTask(ctx context.Context, name string) (int, error) {
	removed := s.list.RemoveTask(name)
	logging.Debugf("removed %d task(s) named %q\n", removed, name)
	return removed, nil
}

// GetTask returns a copy of the first task with the given name
func (s *memoryTaskService) GetTask(ctx context.Context, name string) (*domain.Task, error) {
	task, ok := s.list.GetTask(name)
	if !ok {
		return nil, errors.NewNotFoundError("task", name)
	}
	found := *task
	return &found, nil
}

// ListTasks returns the tasks in insertion order
func (s *memoryTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.list.Tasks(), nil
}

// CountTasks returns the list size
func (s *memoryTaskService) CountTasks(ctx context.Context) (int, error) {
	return s.list.Len(), nil
}

// CompleteTask marks the first matching task as done
func (s *memoryTaskService) CompleteTask(ctx context.Context, name string) (bool, error) {
	return s.transition(name, s.list.CompleteTask)
}

// UncompleteTask resets the first matching task to ToDo
func (s *memoryTaskService) UncompleteTask(ctx context.Context, name string) (bool, error) {
	return s.transition(name, s.list.UncompleteTask)
}

// StartProgress marks the first matching task as in progress
func (s *memoryTaskService) StartProgress(ctx context.Context, name string) (bool, error) {
	return s.transition(name, s.list.StartProgress)
}

// Close is a no-op; the list is discarded with the service
func (s *memoryTaskService) Close() error {
	return nil
}

func (s *memoryTaskService) transition(name string, apply func(string) bool) (bool, error) {
	if !apply(name) {
		return missing(s.opts, name)
	}
	return true, nil
}
