// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown status, task not found).
	UserError = 1

	// ConfigError indicates an auth/config error.
	ConfigError = 2

	// BackendError indicates a store/API/network error.
	BackendError = 3
)
