// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, failed validation, unknown product).
	UserError = 1

	// AuthError indicates the command needs a session that is missing, expired or rejected.
	AuthError = 2

	// BackendError indicates a remote API or network error.
	BackendError = 3
)
