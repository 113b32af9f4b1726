package domain

import (
	"fmt"

	"todo-list/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		TaskName: domainTask.name,
		Status:   domainTask.status.String(),
	}
}

// FromDatabase converts a database Task to a domain Task.
// It fails if the stored status is not one this version knows about.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) (Task, error) {
	var status Status
	if err := status.UnmarshalText([]byte(dbTask.Status)); err != nil {
		return Task{}, fmt.Errorf("task %d: %w", dbTask.ID, err)
	}
	return Task{
		name:   dbTask.TaskName,
		status: status,
	}, nil
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) ([]Task, error) {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		mapped, err := m.FromDatabase(*task)
		if err != nil {
			return nil, err
		}
		domainTasks[i] = mapped
	}
	return domainTasks, nil
}
