package services

import (
	"context"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository/sqlite"
)

// sqliteTaskService implements TaskService on an in-memory SQLite repository
type sqliteTaskService struct {
	repo   sqlite.Repository
	mapper *domain.TaskMapper
	opts   options
}

// NewSQLiteTaskService creates a TaskService backed by repo
func NewSQLiteTaskService(repo sqlite.Repository, opts ...Option) TaskService {
	return &sqliteTaskService{
		repo:   repo,
		mapper: domain.NewTaskMapper(),
		opts:   newOptions(opts),
	}
}

func (s *sqliteTaskService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opts.queryTimeout)
}

// AddTask appends a new ToDo task
func (s *sqliteTaskService) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	trimmedName, err := validateAndTrimTaskName(s.opts, name)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	task := domain.NewTask(trimmedName)
	dbTask := s.mapper.ToDatabase(task)
	if err := s.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}
	logging.Debugf("added task %q as row %d\n", trimmedName, dbTask.ID)
	return &task, nil
}

// RemoveTask removes every task with the given name
func (s *sqliteTaskService) RemoveTask(ctx context.Context, name string) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	removed, err := s.repo.DeleteTasksByName(ctx, name)
	if err != nil {
		return 0, err
	}
	logging.Debugf("removed %d task(s) named %q\n", removed, name)
	return int(removed), nil
}

// GetTask returns the first task with the given name
func (s *sqliteTaskService) GetTask(ctx context.Context, name string) (*domain.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	dbTask, err := s.repo.GetTaskByName(ctx, name)
	if err != nil {
		return nil, err
	}

	task, err := s.mapper.FromDatabase(*dbTask)
	if err != nil {
		return nil, errors.NewDatabaseError("decode task", err)
	}
	return &task, nil
}

// ListTasks returns the tasks in insertion order
func (s *sqliteTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	dbTasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.mapper.FromDatabaseSlice(dbTasks)
	if err != nil {
		return nil, errors.NewDatabaseError("decode tasks", err)
	}
	return tasks, nil
}

// CountTasks returns the number of stored tasks
func (s *sqliteTaskService) CountTasks(ctx context.Context) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.CountTasks(ctx)
}

// CompleteTask marks the first matching task as done
func (s *sqliteTaskService) CompleteTask(ctx context.Context, name string) (bool, error) {
	return s.setStatus(ctx, name, domain.StatusDone)
}

// UncompleteTask resets the first matching task to ToDo
func (s *sqliteTaskService) UncompleteTask(ctx context.Context, name string) (bool, error) {
	return s.setStatus(ctx, name, domain.StatusToDo)
}

// StartProgress marks the first matching task as in progress
func (s *sqliteTaskService) StartProgress(ctx context.Context, name string) (bool, error) {
	return s.setStatus(ctx, name, domain.StatusInProgress)
}

// Close closes the repository, discarding all tasks
func (s *sqliteTaskService) Close() error {
	return s.repo.Close()
}

func (s *sqliteTaskService) setStatus(ctx context.Context, name string, status domain.Status) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.repo.UpdateStatusByName(ctx, name, status.String())
	if errors.IsNotFound(err) {
		return missing(s.opts, name)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
