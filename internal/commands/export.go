package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/output"
	"tasksync/internal/tasksync"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
	out    string
}

// SetFormat sets the export format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

// SetOut sets the output file (for testing).
func (c *ExportCmd) SetOut(path string) {
	c.out = path
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export all tasks as JSON, YAML or PDF" }
func (c *ExportCmd) Usage() string {
	return "tasksync export [--format json|yaml|pdf] [--out <file>]"
}
func (c *ExportCmd) NeedsStore() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", output.FormatJSON, "")
	fs.StringVar(&c.out, "out", "", "")
	fs.StringVar(&c.out, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, ctrl *tasksync.Controller, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	format := strings.ToLower(c.format)
	if format == "" {
		format = output.FormatJSON
	}
	switch format {
	case output.FormatJSON, output.FormatYAML:
	case output.FormatPDF:
		if c.out == "" {
			fmt.Fprintln(errOut, "error: pdf export requires --out <file>")
			return exitcode.UserError
		}
	default:
		fmt.Fprintf(errOut, "error: unknown export format: %s\n", format)
		return exitcode.UserError
	}

	tasks, err := ctrl.List(ctx)
	if err != nil {
		return reportFailure(errOut, "", err)
	}

	if c.out == "" {
		if err := output.Write(out, format, tasks); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	}

	f, err := os.Create(c.out)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to create %s: %v\n", c.out, err)
		return exitcode.UserError
	}
	if err := output.Write(f, format, tasks); err != nil {
		f.Close()
		fmt.Fprintf(errOut, "error: failed to write %s: %v\n", c.out, err)
		return exitcode.UserError
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(errOut, "error: failed to write %s: %v\n", c.out, err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "exported %d tasks to %s\n", len(tasks), c.out)
	}
	return exitcode.Success
}
