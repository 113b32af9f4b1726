package services

import (
	"context"
	"strings"

	"todo-list/internal/domain"
)

// searchServiceImpl implements the SearchService interface
type searchServiceImpl struct {
	taskService TaskService
}

// NewSearchService creates a new SearchService instance
func NewSearchService(taskService TaskService) SearchService {
	return &searchServiceImpl{taskService: taskService}
}

// matchesTextFilter checks if a task name matches the text filter
func (s *searchServiceImpl) matchesTextFilter(taskName, textFilter string) bool {
	if textFilter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(taskName), strings.ToLower(textFilter))
}

// SearchTasks lists the tasks matching criteria, in insertion order
func (s *searchServiceImpl) SearchTasks(ctx context.Context, criteria SearchCriteria) ([]domain.Task, error) {
	tasks, err := s.taskService.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.FilterTasks(tasks, criteria), nil
}

// FilterTasks keeps the tasks matching criteria without reordering them
func (s *searchServiceImpl) FilterTasks(tasks []domain.Task, criteria SearchCriteria) []domain.Task {
	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if criteria.Status != nil && task.Status() != *criteria.Status {
			continue
		}
		if !s.matchesTextFilter(task.Name(), criteria.TextFilter) {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}
