package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// ValidateExportFormat accepts the list formats plus pdf
func ValidateExportFormat(format string) error {
	if format == "pdf" || config.IsListFormat(format) {
		return nil
	}
	return errors.NewInvalidInputError("format", format, "must be one of table, csv, json, yaml, pdf")
}

// Export renders the current task list to w. Besides the list formats it
// supports pdf, a printable report with a status summary.
func (a *App) Export(ctx context.Context, w io.Writer, format string) error {
	if err := ValidateExportFormat(format); err != nil {
		return err
	}

	tasks, err := a.services.TaskService.ListTasks(ctx)
	if err != nil {
		return a.errorHandler.Handle("export tasks", err)
	}

	if format != "pdf" {
		return RenderTasks(w, tasks, format)
	}
	return a.renderPDF(w, tasks)
}

func (a *App) renderPDF(w io.Writer, tasks []domain.Task) error {
	summary := a.services.ReportingService.Summarize(tasks)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task List")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %d  todo: %d  in progress: %d  done: %d",
		summary.Total, summary.ToDo, summary.InProgress, summary.Done))
	pdf.Ln(10)

	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "No tasks found", "0", "L", false)
	}
	for _, row := range toRows(tasks) {
		line := fmt.Sprintf("%d. [%s] %s", row.Position, row.Status.String(), row.Name)
		pdf.MultiCell(0, 6, pdfText(tr, line), "0", "L", false)
	}

	return pdf.Output(w)
}

// cp1252Extras are the characters cp1252 places in 0x80-0x9F
const cp1252Extras = "€‚ƒ„…†‡ˆ‰Š‹ŒŽ‘’“”•–—˜™š›œžŸ"

// pdfText encodes s for the core PDF fonts, which only cover cp1252.
// Characters outside it become '?'.
func pdfText(translate func(string) string, s string) string {
	return translate(strings.Map(func(r rune) rune {
		if r < 0x80 || (r >= 0xA0 && r <= 0xFF) || strings.ContainsRune(cp1252Extras, r) {
			return r
		}
		return '?'
	}, s))
}
