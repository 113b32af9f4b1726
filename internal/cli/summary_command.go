package cli

import (
	"context"
	"fmt"
)

// SummaryCommand prints the number of tasks per status
type SummaryCommand struct {
	app *App
}

// NewSummaryCommand creates a new summary command
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{app: app}
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	summary, err := c.app.services.ReportingService.GetStatusSummary(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("summarize tasks", err)
	}

	_, err = fmt.Fprintf(c.app.out, "Total: %d (todo: %d, in progress: %d, done: %d)\n",
		summary.Total, summary.ToDo, summary.InProgress, summary.Done)
	return err
}
