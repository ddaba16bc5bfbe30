package commands

import (
	"context"
	"flag"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/tasksync"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "tasksync done <id>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, ctrl *tasksync.Controller, args []string, out, errOut io.Writer) int {
	id, valid := taskID(errOut, args)
	if !valid {
		return exitcode.UserError
	}

	if err := ctrl.Complete(ctx, id); err != nil {
		return reportFailure(errOut, id, err)
	}

	ok(cfg.Quiet, out)
	return exitcode.Success
}
