package cli

import (
	"context"
	"fmt"
)

// GetCommand shows the status of the first task with the given name
type GetCommand struct {
	app *App
}

// NewGetCommand creates a new get command
func NewGetCommand(app *App) *GetCommand {
	return &GetCommand{app: app}
}

// Execute runs the get command
func (c *GetCommand) Execute(ctx context.Context, args []string) error {
	name := taskName(args)
	task, err := c.app.services.TaskService.GetTask(ctx, name)
	if err != nil {
		// A miss only ends the session in strict mode
		if c.app.errorHandler.IsNotFoundError(err) && !c.app.config.Application.Strict {
			_, err = fmt.Fprintf(c.app.out, "Task not found: %s\n", name)
			return err
		}
		return c.app.errorHandler.Handle("get task", err)
	}

	_, err = fmt.Fprintf(c.app.out, "%s: %s\n", task.Name(), task.Status())
	return err
}
