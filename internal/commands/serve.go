package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/logging"
	"tasksync/internal/tasksync"
	"tasksync/internal/web"
)

func init() {
	Register(&ServeCmd{})
}

// ServeCmd implements the serve command.
type ServeCmd struct {
	addr string
}

func (c *ServeCmd) Name() string      { return "serve" }
func (c *ServeCmd) Aliases() []string { return []string{"web"} }
func (c *ServeCmd) Synopsis() string  { return "Run the web UI" }
func (c *ServeCmd) Usage() string     { return "tasksync serve [--addr <host:port>]" }
func (c *ServeCmd) NeedsStore() bool  { return true }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", "", "")
}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, ctrl *tasksync.Controller, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	addr := c.addr
	if addr == "" {
		addr = cfg.Listen
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Quiet {
		level = slog.LevelWarn
	}
	logger := logging.NewWithLevel(errOut, cfg.LogFormat, level)

	srv := web.NewServer(ctrl.WithLogger(logger), web.Options{
		Messages: tasksync.Messages{DetailAll: cfg.DetailAllErrors},
		Logger:   logger,
	})

	if err := srv.Run(ctx, addr); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
