package cli

import (
	"context"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/services"
)

// ListCommand renders the task list in insertion order
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command. Each argument is either an output format
// or a status to filter on, in any order.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	format := c.app.config.Display.ListDefaultFormat
	criteria := services.SearchCriteria{}

	formatSet := false
	for _, arg := range args {
		if config.IsListFormat(arg) {
			if formatSet {
				return errListArgs(args)
			}
			format = arg
			formatSet = true
			continue
		}
		if criteria.Status != nil {
			return errListArgs(args)
		}
		if err := c.app.taskValidator.ValidateStatus(arg); err != nil {
			return c.app.errorHandler.Handle("list tasks", err)
		}
		status, err := domain.ParseStatus(arg)
		if err != nil {
			return c.app.errorHandler.Handle("list tasks", err)
		}
		criteria.Status = &status
	}

	tasks, err := c.app.services.SearchService.SearchTasks(ctx, criteria)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}
	return RenderTasks(c.app.out, tasks, format)
}

func errListArgs(args []string) error {
	return errors.NewInvalidInputError("list", args, "expected at most one format and one status")
}

// FindCommand lists the tasks whose names contain the given text
type FindCommand struct {
	app *App
}

// NewFindCommand creates a new find command
func NewFindCommand(app *App) *FindCommand {
	return &FindCommand{app: app}
}

// Execute runs the find command
func (c *FindCommand) Execute(ctx context.Context, args []string) error {
	criteria := services.SearchCriteria{TextFilter: taskName(args)}
	tasks, err := c.app.services.SearchService.SearchTasks(ctx, criteria)
	if err != nil {
		return c.app.errorHandler.Handle("find tasks", err)
	}
	return RenderTasks(c.app.out, tasks, c.app.config.Display.ListDefaultFormat)
}
