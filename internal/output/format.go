// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasksync/internal/service"
)

// EmptyText is printed by list when the store has no tasks.
const EmptyText = "no tasks available"

// FormatTask formats one task line.
// Format: "{N:>4}  {STATUS:<9}  {DESCRIPTION}  ({ID})\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %-9s  %s  (%s)\n", num, task.Status, normalizeDescription(task.Description), task.ID)
}

// FormatTasks formats tasks numbered from 1 in the given order.
func FormatTasks(w io.Writer, tasks []service.Task) {
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// FormatDetail formats a single task as labelled fields.
func FormatDetail(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "id:          %s\n", task.ID)
	fmt.Fprintf(w, "description: %s\n", normalizeDescription(task.Description))
	fmt.Fprintf(w, "status:      %s\n", task.Status)
}

// normalizeDescription normalizes a description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
