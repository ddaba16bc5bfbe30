package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/tasksync"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tasksync help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, ctrl *tasksync.Controller, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tasksync                                   List all tasks
  tasksync serve [common flags] [--addr <host:port>]
  tasksync list [common flags] [--format text|json|yaml]
  tasksync show [common flags] <id>
  tasksync add [common flags] [--status <status>] <description...>
  tasksync create [common flags] [--status <status>] <description...>
  tasksync update [common flags] --status <status> <id> <description...>
  tasksync done [common flags] <id>
  tasksync rm [common flags] <id>
  tasksync export [common flags] [--format json|yaml|pdf] [--out <file>]
  tasksync login [common flags]
  tasksync logout [common flags]
  tasksync help
  tasksync version

Statuses:
  Pending, Completed

Common flags:
  --config <dir>   Override config directory
  --url <url>      Override the task store URL
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
