package cli

import (
	"context"
	"fmt"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// SelfCheck runs the reference add, transition and remove scenario against
// the task service and reports the first step whose outcome is wrong.
// It expects an empty list.
func (a *App) SelfCheck(ctx context.Context) error {
	tasks := a.services.TaskService

	for _, name := range []string{"Task 1", "Task 2"} {
		if _, err := tasks.AddTask(ctx, name); err != nil {
			return fmt.Errorf("selfcheck: add %q: %w", name, err)
		}
	}
	if err := a.expectSize(ctx, 2); err != nil {
		return err
	}

	steps := []struct {
		name  string
		apply func(context.Context, string) (bool, error)
		want  domain.Status
	}{
		{"start progress", tasks.StartProgress, domain.StatusInProgress},
		{"complete", tasks.CompleteTask, domain.StatusDone},
		{"complete again", tasks.CompleteTask, domain.StatusDone},
		{"uncomplete", tasks.UncompleteTask, domain.StatusToDo},
	}
	for _, step := range steps {
		found, err := step.apply(ctx, "Task 1")
		if err != nil {
			return fmt.Errorf("selfcheck: %s: %w", step.name, err)
		}
		if !found {
			return fmt.Errorf("selfcheck: %s: Task 1 not found", step.name)
		}
		if err := a.expectStatus(ctx, "Task 1", step.want); err != nil {
			return fmt.Errorf("selfcheck: %s: %w", step.name, err)
		}
	}

	if _, err := tasks.RemoveTask(ctx, "Task 1"); err != nil {
		return fmt.Errorf("selfcheck: remove: %w", err)
	}
	if err := a.expectSize(ctx, 1); err != nil {
		return err
	}
	if _, err := tasks.GetTask(ctx, "Task 1"); !errors.IsNotFound(err) {
		return fmt.Errorf("selfcheck: Task 1 still present after remove (err: %v)", err)
	}
	if err := a.expectStatus(ctx, "Task 2", domain.StatusToDo); err != nil {
		return fmt.Errorf("selfcheck: after remove: %w", err)
	}

	_, err := fmt.Fprintln(a.out, "All tests completed successfully!")
	return err
}

func (a *App) expectSize(ctx context.Context, want int) error {
	count, err := a.services.TaskService.CountTasks(ctx)
	if err != nil {
		return fmt.Errorf("selfcheck: count: %w", err)
	}
	if count != want {
		return fmt.Errorf("selfcheck: expected %d tasks, got %d", want, count)
	}
	return nil
}

func (a *App) expectStatus(ctx context.Context, name string, want domain.Status) error {
	task, err := a.services.TaskService.GetTask(ctx, name)
	if err != nil {
		return err
	}
	if task.Status() != want {
		return fmt.Errorf("%s: expected status %s, got %s", name, want, task.Status())
	}
	return nil
}
