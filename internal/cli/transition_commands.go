package cli

import (
	"context"
	"fmt"
)

type transitionFunc func(ctx context.Context, name string) (bool, error)

// TransitionCommand moves the first task with the given name to a new status
type TransitionCommand struct {
	app       *App
	operation string
	message   string
	apply     func(app *App) transitionFunc
}

// NewStartCommand creates a command that marks a task in progress
func NewStartCommand(app *App) *TransitionCommand {
	return &TransitionCommand{
		app:       app,
		operation: "start task",
		message:   "Started task",
		apply: func(app *App) transitionFunc {
			return app.services.TaskService.StartProgress
		},
	}
}

// NewCompleteCommand creates a command that marks a task done
func NewCompleteCommand(app *App) *TransitionCommand {
	return &TransitionCommand{
		app:       app,
		operation: "complete task",
		message:   "Completed task",
		apply: func(app *App) transitionFunc {
			return app.services.TaskService.CompleteTask
		},
	}
}

// NewUncompleteCommand creates a command that puts a task back to todo
func NewUncompleteCommand(app *App) *TransitionCommand {
	return &TransitionCommand{
		app:       app,
		operation: "uncomplete task",
		message:   "Reopened task",
		apply: func(app *App) transitionFunc {
			return app.services.TaskService.UncompleteTask
		},
	}
}

// Execute runs the transition
func (c *TransitionCommand) Execute(ctx context.Context, args []string) error {
	name := taskName(args)
	found, err := c.apply(c.app)(ctx, name)
	if err != nil {
		return c.app.errorHandler.Handle(c.operation, err)
	}

	if !found {
		_, err = fmt.Fprintf(c.app.out, "No task named %s\n", name)
		return err
	}
	_, err = fmt.Fprintf(c.app.out, "%s: %s\n", c.message, name)
	return err
}
