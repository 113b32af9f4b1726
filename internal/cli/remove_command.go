package cli

import (
	"context"
	"fmt"
)

// RemoveCommand removes every task with the given name
type RemoveCommand struct {
	app *App
}

// NewRemoveCommand creates a new remove command
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app}
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	name := taskName(args)
	removed, err := c.app.services.TaskService.RemoveTask(ctx, name)
	if err != nil {
		return c.app.errorHandler.Handle("remove task", err)
	}

	if removed == 0 {
		_, err = fmt.Fprintf(c.app.out, "No task named %s\n", name)
		return err
	}
	_, err = fmt.Fprintf(c.app.out, "Removed %d task(s) named %s\n", removed, name)
	return err
}
