package cli

import (
	"context"
	"fmt"
)

// AddCommand appends a new task to the list
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.services.TaskService.AddTask(ctx, taskName(args))
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	_, err = fmt.Fprintf(c.app.out, "Added task: %s\n", task.Name())
	return err
}
