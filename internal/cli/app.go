package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"todo-list/internal/config"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/services"
	"todo-list/internal/validation"
)

// App applies session commands to one task list
type App struct {
	services      *services.ServiceContainer
	config        *config.Config
	registry      *CommandRegistry
	errorHandler  *ErrorHandler
	taskValidator *validation.TaskValidator
	out           io.Writer
}

// NewApp creates a new session application writing its output to out
func NewApp(container *services.ServiceContainer, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		services:      container,
		config:        cfg,
		errorHandler:  NewErrorHandler(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
		out:           out,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes a single command given as a verb followed by its arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "", a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	return a.registry.Execute(ctx, commandName, commandArgs)
}

// RunSession reads commands line by line and executes them in order.
// Blank lines and lines starting with # are skipped. The first failing
// command stops the session.
func (a *App) RunSession(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return errors.NewTimeoutError("session", err)
		}

		logging.Debugf("line %d: %s\n", lineNumber, line)
		if err := a.Run(ctx, strings.Fields(line)); err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	return nil
}

// taskName joins command arguments into a task name
func taskName(args []string) string {
	return strings.Join(args, " ")
}
