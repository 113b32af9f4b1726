package services

import (
	"context"

	"todo-list/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	taskService TaskService
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(taskService TaskService) ReportingService {
	return &reportingServiceImpl{taskService: taskService}
}

// GetStatusSummary counts the current tasks per status
func (r *reportingServiceImpl) GetStatusSummary(ctx context.Context) (*StatusSummary, error) {
	tasks, err := r.taskService.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return r.Summarize(tasks), nil
}

// Summarize counts tasks per status
func (r *reportingServiceImpl) Summarize(tasks []domain.Task) *StatusSummary {
	summary := &StatusSummary{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status() {
		case domain.StatusToDo:
			summary.ToDo++
		case domain.StatusInProgress:
			summary.InProgress++
		case domain.StatusDone:
			summary.Done++
		}
	}
	return summary
}
