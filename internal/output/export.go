package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"tasksync/internal/service"
)

// Formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatPDF  = "pdf"
)

// record is the serialized form of a task.
type record struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Status      string `json:"status" yaml:"status"`
}

func records(tasks []service.Task) []record {
	out := make([]record, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, record{ID: t.ID, Description: t.Description, Status: string(t.Status)})
	}
	return out
}

// Write renders tasks in the named format.
func Write(w io.Writer, format string, tasks []service.Task) error {
	switch strings.ToLower(format) {
	case FormatText:
		FormatTasks(w, tasks)
		return nil
	case FormatJSON:
		return WriteJSON(w, tasks)
	case FormatYAML:
		return WriteYAML(w, tasks)
	case FormatPDF:
		return WritePDF(w, tasks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes tasks as an indented JSON array.
func WriteJSON(w io.Writer, tasks []service.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records(tasks))
}

// WriteYAML writes tasks as a YAML sequence.
func WriteYAML(w io.Writer, tasks []service.Task) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(tasks)); err != nil {
		return err
	}
	return enc.Close()
}

// WritePDF writes a one-table task report.
func WritePDF(w io.Writer, tasks []service.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Manager")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(25, 7, "ID", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Description", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	if len(tasks) == 0 {
		pdf.CellFormat(0, 7, "No tasks available.", "1", 1, "L", false, 0, "")
	}
	for _, t := range tasks {
		pdf.CellFormat(25, 7, tr(t.ID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, string(t.Status), "1", 0, "L", false, 0, "")
		pdf.MultiCell(0, 7, tr(normalizeDescription(t.Description)), "1", "L", false)
	}

	return pdf.Output(w)
}
