package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"todo-list/internal/errors"
)

// Command represents a session command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available session commands
type CommandRegistry struct {
	commands map[string]Command
	usages   map[string]string
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
		usages:   make(map[string]string),
	}

	registry.Register("add", "add <name>", NewAddCommand(app))
	registry.Register("remove", "remove <name>", NewRemoveCommand(app))
	registry.Register("get", "get <name>", NewGetCommand(app))
	registry.Register("start", "start <name>", NewStartCommand(app))
	registry.Register("complete", "complete <name>", NewCompleteCommand(app))
	registry.Register("uncomplete", "uncomplete <name>", NewUncompleteCommand(app))
	registry.Register("list", "list [table|csv|json|yaml] [todo|in_progress|done]", NewListCommand(app))
	registry.Register("find", "find <text>", NewFindCommand(app))
	registry.Register("summary", "summary", NewSummaryCommand(app))
	registry.Register("help", "help", &helpCommand{registry: registry, app: app})

	return registry
}

// Register adds a command and its one-line usage to the registry
func (r *CommandRegistry) Register(name, usage string, command Command) {
	r.commands[name] = command
	r.usages[name] = usage
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command "+commandName)
	}
	return command.Execute(ctx, args)
}

// Names returns the registered command names in alphabetical order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetUsage returns a one-line summary of every registered command
func (r *CommandRegistry) GetUsage() string {
	names := r.Names()
	usages := make([]string, len(names))
	for i, name := range names {
		usages[i] = r.usages[name]
	}
	return "usage: " + strings.Join(usages, " | ")
}

type helpCommand struct {
	registry *CommandRegistry
	app      *App
}

// Execute prints one usage line per command
func (c *helpCommand) Execute(ctx context.Context, args []string) error {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range c.registry.Names() {
		fmt.Fprintf(&b, "  %s\n", c.registry.usages[name])
	}
	_, err := io.WriteString(c.app.out, b.String())
	return err
}
