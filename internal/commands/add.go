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
	Register(&AddCmd{})
	Register(&CreateCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	status string
}

// SetStatus sets the status flag (for testing).
func (c *AddCmd) SetStatus(status string) {
	c.status = status
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "tasksync add [--status <status>] <description...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "Pending", "")
	fs.StringVar(&c.status, "s", "Pending", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, ctrl *tasksync.Controller, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, ctrl, c.status, args, out, errOut)
}

// CreateCmd is an alias for AddCmd.
type CreateCmd struct {
	status string
}

func (c *CreateCmd) Name() string      { return "create" }
func (c *CreateCmd) Aliases() []string { return nil }
func (c *CreateCmd) Synopsis() string  { return "Create a task (alias for add)" }
func (c *CreateCmd) Usage() string     { return "tasksync create [--status <status>] <description...>" }
func (c *CreateCmd) NeedsStore() bool  { return true }

func (c *CreateCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "Pending", "")
	fs.StringVar(&c.status, "s", "Pending", "")
}

func (c *CreateCmd) Run(ctx context.Context, cfg *config.Config, ctrl *tasksync.Controller, args []string, out, errOut io.Writer) int {
	return runAdd(ctx, cfg, ctrl, c.status, args, out, errOut)
}

// runAdd is the shared implementation for add and create commands.
// The description may be empty (tasksync add ""), but it must be given.
func runAdd(ctx context.Context, cfg *config.Config, ctrl *tasksync.Controller, rawStatus string, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}
	if rawStatus == "" {
		rawStatus = "Pending"
	}
	status, valid := parseStatusFlag(errOut, rawStatus)
	if !valid {
		return exitcode.UserError
	}

	description := strings.Join(args, " ")
	if err := ctrl.Create(ctx, description, status); err != nil {
		return reportFailure(errOut, "", err)
	}

	ok(cfg.Quiet, out)
	return exitcode.Success
}
