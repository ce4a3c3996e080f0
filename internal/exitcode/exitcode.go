// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates bad arguments, an unknown command or a session
	// that could not start.
	UserError = 1

	// ConfigError indicates the config file or environment is invalid.
	ConfigError = 2

	// Interrupted indicates the session was cancelled by a signal.
	Interrupted = 130
)
