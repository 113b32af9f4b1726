package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// taskRow is the rendered form of one task. Status encodes as its wire
// form through domain.Status.MarshalText.
type taskRow struct {
	Position int           `json:"position" yaml:"position"`
	Name     string        `json:"name" yaml:"name"`
	Status   domain.Status `json:"status" yaml:"status"`
}

func toRows(tasks []domain.Task) []taskRow {
	rows := make([]taskRow, 0, len(tasks))
	for i, task := range tasks {
		rows = append(rows, taskRow{
			Position: i + 1,
			Name:     task.Name(),
			Status:   task.Status(),
		})
	}
	return rows
}

// RenderTasks writes tasks to w in the given format (table, csv, json or yaml)
func RenderTasks(w io.Writer, tasks []domain.Task, format string) error {
	switch format {
	case "table":
		return renderTable(w, tasks)
	case "csv":
		return renderCSV(w, tasks)
	case "json":
		return renderJSON(w, tasks)
	case "yaml":
		return renderYAML(w, tasks)
	default:
		return errors.NewInvalidInputError("format", format, "must be one of table, csv, json, yaml")
	}
}

func renderTable(w io.Writer, tasks []domain.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSTATUS")
	for _, row := range toRows(tasks) {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", row.Position, row.Name, row.Status.String())
	}
	return tw.Flush()
}

func renderCSV(w io.Writer, tasks []domain.Task) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Position", "Name", "Status"}); err != nil {
		return err
	}
	for _, row := range toRows(tasks) {
		record := []string{strconv.Itoa(row.Position), row.Name, row.Status.String()}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func renderJSON(w io.Writer, tasks []domain.Task) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toRows(tasks))
}

func renderYAML(w io.Writer, tasks []domain.Task) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(toRows(tasks)); err != nil {
		return err
	}
	return encoder.Close()
}
