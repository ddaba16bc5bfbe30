package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/tasksync"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update command. It overwrites both mutable
// fields, so --status is required.
type UpdateCmd struct {
	status string
}

// SetStatus sets the status flag (for testing).
func (c *UpdateCmd) SetStatus(status string) {
	c.status = status
}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return []string{"edit"} }
func (c *UpdateCmd) Synopsis() string  { return "Overwrite a task's description and status" }
func (c *UpdateCmd) Usage() string     { return "tasksync update --status <status> <id> <description...>" }
func (c *UpdateCmd) NeedsStore() bool  { return true }

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, ctrl *tasksync.Controller, args []string, out, errOut io.Writer) int {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}
	if c.status == "" {
		fmt.Fprintln(errOut, "error: --status required")
		return exitcode.UserError
	}
	status, valid := parseStatusFlag(errOut, c.status)
	if !valid {
		return exitcode.UserError
	}

	id := args[0]
	description := strings.Join(args[1:], " ")
	if err := ctrl.Update(ctx, id, description, status); err != nil {
		return reportFailure(errOut, id, err)
	}

	ok(cfg.Quiet, out)
	return exitcode.Success
}
