package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"
)

type backend struct {
	name string
	new  func(t *testing.T, opts ...Option) TaskService
}

func backends() []backend {
	return []backend{
		{name: "memory", new: setupMemoryTaskService},
		{name: "sqlite", new: setupSQLiteTaskService},
	}
}

func setupMemoryTaskService(t *testing.T, opts ...Option) TaskService {
	service := NewMemoryTaskService(domain.NewTaskList(), opts...)
	t.Cleanup(func() { service.Close() })
	return service
}

func setupSQLiteTaskService(t *testing.T, opts ...Option) TaskService {
	repo, err := sqlite.New(context.Background())
	require.NoError(t, err)
	service := NewSQLiteTaskService(repo, opts...)
	t.Cleanup(func() { service.Close() })
	return service
}

func addTasks(t *testing.T, service TaskService, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := service.AddTask(context.Background(), name)
		require.NoError(t, err)
	}
}

func listNames(t *testing.T, service TaskService) []string {
	t.Helper()
	tasks, err := service.ListTasks(context.Background())
	require.NoError(t, err)
	names := make([]string, len(tasks))
	for i, task := range tasks {
		names[i] = task.Name()
	}
	return names
}

func statusOf(t *testing.T, service TaskService, name string) domain.Status {
	t.Helper()
	task, err := service.GetTask(context.Background(), name)
	require.NoError(t, err)
	return task.Status()
}

func TestTaskService_Scenario(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			service := b.new(t)
			ctx := context.Background()

			addTasks(t, service, "Task 1", "Task 2")
			assert.Len(t, listNames(t, service), 2)
			count, err := service.CountTasks(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, count)

			ok, err := service.StartProgress(ctx, "Task 1")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, domain.StatusInProgress, statusOf(t, service, "Task 1"))

			ok, err = service.CompleteTask(ctx, "Task 1")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, domain.StatusDone, statusOf(t, service, "Task 1"))

			ok, err = service.UncompleteTask(ctx, "Task 1")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, domain.StatusToDo, statusOf(t, service, "Task 1"))

			removed, err := service.RemoveTask(ctx, "Task 1")
			require.NoError(t, err)
			assert.Equal(t, 1, removed)
			assert.Equal(t, []string{"Task 2"}, listNames(t, service))
			count, err = service.CountTasks(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, count)

			_, err = service.GetTask(ctx, "Task 1")
			assert.True(t, errors.IsNotFound(err))
			assert.Equal(t, domain.StatusToDo, statusOf(t, service, "Task 2"))
		})
	}
}

func TestTaskService_AddTask(t *testing.T) {
	tests := []struct {
		name           string
		taskName       string
		expectedName   string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:         "should create task with valid name",
			taskName:     "Test Task",
			expectedName: "Test Task",
		},
		{
			name:         "should trim surrounding whitespace",
			taskName:     "  Padded  ",
			expectedName: "Padded",
		},
		{
			name:     "should return validation error for empty name",
			taskName: "",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, errors.GetUserMessage(err), "task_name is required")
			},
		},
		{
			name:     "should return validation error for very long name",
			taskName: strings.Repeat("x", 300),
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
	}

	for _, b := range backends() {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.name, func(t *testing.T) {
				service := b.new(t)

				result, err := service.AddTask(context.Background(), tt.taskName)

				if tt.errorAssertion != nil {
					tt.errorAssertion(t, err)
					assert.Nil(t, result)
					assert.Empty(t, listNames(t, service))
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.expectedName, result.Name())
				assert.Equal(t, domain.StatusToDo, result.Status())
				assert.Equal(t, []string{tt.expectedName}, listNames(t, service))
			})
		}
	}
}

func TestTaskService_DuplicateNames(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			service := b.new(t)
			ctx := context.Background()
			addTasks(t, service, "dup", "other", "dup")

			_, err := service.CompleteTask(ctx, "dup")
			require.NoError(t, err)

			tasks, err := service.ListTasks(ctx)
			require.NoError(t, err)
			require.Len(t, tasks, 3)
			assert.Equal(t, domain.StatusDone, tasks[0].Status())
			assert.Equal(t, domain.StatusToDo, tasks[2].Status())

			removed, err := service.RemoveTask(ctx, "dup")
			require.NoError(t, err)
			assert.Equal(t, 2, removed)
			assert.Equal(t, []string{"other"}, listNames(t, service))
		})
	}
}

func TestTaskService_MissingNames(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name+"/quiet", func(t *testing.T) {
			service := b.new(t)
			ctx := context.Background()
			addTasks(t, service, "present")

			for _, transition := range []func(context.Context, string) (bool, error){
				service.CompleteTask, service.UncompleteTask, service.StartProgress,
			} {
				ok, err := transition(ctx, "absent")
				assert.NoError(t, err)
				assert.False(t, ok)
			}

			removed, err := service.RemoveTask(ctx, "absent")
			assert.NoError(t, err)
			assert.Zero(t, removed)

			assert.Equal(t, []string{"present"}, listNames(t, service))
			assert.Equal(t, domain.StatusToDo, statusOf(t, service, "present"))
		})

		t.Run(b.name+"/strict", func(t *testing.T) {
			service := b.new(t, WithStrict(true))
			ctx := context.Background()

			ok, err := service.CompleteTask(ctx, "absent")
			assert.False(t, ok)
			assert.True(t, errors.IsNotFound(err))
			assert.Contains(t, err.Error(), "absent")

			// Removal stays a no-op even in strict mode
			removed, err := service.RemoveTask(ctx, "absent")
			assert.NoError(t, err)
			assert.Zero(t, removed)
		})
	}
}

func TestTaskService_CompleteTaskIsIdempotent(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			service := b.new(t)
			ctx := context.Background()
			addTasks(t, service, "t")

			for i := 0; i < 2; i++ {
				ok, err := service.CompleteTask(ctx, "t")
				require.NoError(t, err)
				assert.True(t, ok)
			}
			assert.Equal(t, domain.StatusDone, statusOf(t, service, "t"))
		})
	}
}

func TestTaskService_GetTaskReturnsDetachedCopy(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			service := b.new(t)
			addTasks(t, service, "copy")

			task, err := service.GetTask(context.Background(), "copy")
			require.NoError(t, err)
			task.Complete()

			assert.Equal(t, domain.StatusToDo, statusOf(t, service, "copy"))
		})
	}
}

func TestMemoryTaskService_SharesList(t *testing.T) {
	list := domain.NewTaskList()
	service := NewMemoryTaskService(list)
	addTasks(t, service, "shared")

	assert.Equal(t, 1, list.Len())
	_, ok := list.GetTask("shared")
	assert.True(t, ok)
}

func TestSQLiteTaskService_Timeout(t *testing.T) {
	service := setupSQLiteTaskService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.ListTasks(ctx)
	assert.Error(t, err)
}
