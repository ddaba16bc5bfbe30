package commands

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tasksync/internal/exitcode"
	"tasksync/internal/service"
)

// reportFailure prints a store failure and returns the exit code for it.
// A missing task is a user error; everything else is a backend error.
func reportFailure(errOut io.Writer, id string, err error) int {
	if id != "" && isNotFound(err) {
		fmt.Fprintf(errOut, "error: task not found: %s\n", id)
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: backend error: %s\n", service.Detail(err))
	return exitcode.BackendError
}

func isNotFound(err error) bool {
	if errors.Is(err, service.ErrNotFound) {
		return true
	}
	var se *service.StoreError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// parseStatusFlag validates a --status value.
func parseStatusFlag(errOut io.Writer, raw string) (service.Status, bool) {
	status, err := service.ParseStatus(raw)
	if err != nil {
		fmt.Fprintf(errOut, "error: invalid status: %s (want %s)\n", raw, statusChoices())
		return "", false
	}
	return status, true
}

func statusChoices() string {
	var names []string
	for _, s := range service.Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, " or ")
}

// taskID extracts the single <id> argument.
func taskID(errOut io.Writer, args []string) (string, bool) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: task id required")
		return "", false
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return "", false
	}
	return args[0], true
}

func ok(cfgQuiet bool, out io.Writer) {
	if !cfgQuiet {
		fmt.Fprintln(out, "ok")
	}
}
